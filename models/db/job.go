package dbmodels

type Job struct {
	BaseModel
	Title       string `gorm:"type:varchar(200)"`
	Location    string `gorm:"type:varchar(100)"`
	Customer    string `gorm:"type:varchar(100)"`
	JobName     string `gorm:"type:varchar(100)"`
	Description string
	Questions   []Question `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}
