package xlsexport

import (
	"bytes"
	"fmt"
	"job-intake-backend/lib/scoring"

	dbmodels "job-intake-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportApplicationList(job dbmodels.Job, list []dbmodels.Application) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicationHeaders = []string{"Кандидат", "Email", "Балл", "Макс. балл", "Процент", "Дата подачи"}

func (i impl) ExportApplicationList(job dbmodels.Job, list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeApplicationData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Отклики")
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Кандидат"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CandidateName); err != nil {
			return row, err
		}

		// "Email"
		col++
		if err := writeColumn(f, sheet, col, row, item.CandidateEmail); err != nil {
			return row, err
		}

		// "Балл"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalScore); err != nil {
			return row, err
		}

		// "Макс. балл"
		col++
		if err := writeColumn(f, sheet, col, row, item.MaxScore); err != nil {
			return row, err
		}

		// "Процент"
		col++
		pct := scoring.Percentage(item.TotalScore, item.MaxScore)
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.2f%%", pct)); err != nil {
			return row, err
		}

		// "Дата подачи"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006 15:04")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
