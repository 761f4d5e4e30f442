package dbmodels

type FileType string

const (
	ResumeFileType FileType = "resume"
)

type FileStorage struct {
	BaseModel
	ApplicationID string   `gorm:"type:varchar(36);index"`
	FileType      FileType `gorm:"type:varchar(20)"`
	Name          string   // имя файла кандидата
	ObjectKey     string   // ключ объекта в S3
}
