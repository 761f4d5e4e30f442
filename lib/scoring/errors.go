package scoring

import (
	"fmt"

	"github.com/pkg/errors"
)

// SubmissionError - некорректный отклик кандидата, исправляется повтором запроса (4xx)
type SubmissionError struct {
	msg string
}

func (e SubmissionError) Error() string {
	return e.msg
}

func NewSubmissionError(format string, args ...interface{}) error {
	return SubmissionError{msg: fmt.Sprintf(format, args...)}
}

func IsSubmissionError(err error) bool {
	var submissionErr SubmissionError
	return errors.As(err, &submissionErr)
}

// ConfigError - некорректная настройка оценки вопроса, кандидат исправить не может (5xx)
type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string {
	return e.msg
}

func NewConfigError(format string, args ...interface{}) error {
	return ConfigError{msg: fmt.Sprintf(format, args...)}
}

func IsConfigError(err error) bool {
	var configErr ConfigError
	return errors.As(err, &configErr)
}
