package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"job-intake-backend/lib/scoring"
	dbmodels "job-intake-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

func GenerateScorecard(jobTitle string, rec dbmodels.Application) (buf *bytes.Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateScorecard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.AddUTF8Font("Arial", "I", "Arial Italic.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	// заголовок
	pdf.MultiCell(0, 8, fmt.Sprintf("Оценочный лист: %v", jobTitle), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Кандидат: %v", rec.CandidateName), "", "L", false)
	pdf.MultiCell(0, 6, fmt.Sprintf("Email: %v", rec.CandidateEmail), "", "L", false)
	if !rec.CreatedAt.IsZero() {
		pdf.MultiCell(0, 6, fmt.Sprintf("Дата подачи: %v", rec.CreatedAt.Format("02.01.2006 15:04")), "", "L", false)
	}
	pdf.Ln(4)

	// разбивка по вопросам
	for idx, ans := range rec.Answers {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %v", idx+1, ans.QuestionText), "", "L", false)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, fmt.Sprintf("Ответ: %v", formatAnswer(ans.Answer)), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Балл: %v из %v", ans.Score, ans.MaxScore), "", "L", false)
		pdf.Ln(2)
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 14)
	pct := scoring.Percentage(rec.TotalScore, rec.MaxScore)
	pdf.MultiCell(0, 8, fmt.Sprintf("Итог: %v из %v (%.2f%%)", rec.TotalScore, rec.MaxScore, pct), "", "L", false)

	buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func formatAnswer(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return strings.Join(items, ", ")
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
