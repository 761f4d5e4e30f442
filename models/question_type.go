package models

type QuestionType string

const (
	QuestionTypeText         QuestionType = "text"
	QuestionTypeNumber       QuestionType = "number"
	QuestionTypeSingleChoice QuestionType = "single_choice"
	QuestionTypeMultiChoice  QuestionType = "multi_choice"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeNumber, QuestionTypeSingleChoice, QuestionTypeMultiChoice:
		return true
	}
	return false
}

// HasOptions - для типов с вариантами ответов требуется список options
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

type JobSortField string

const (
	JobSortFieldCreatedAt JobSortField = "created_at"
	JobSortFieldLocation  JobSortField = "location"
	JobSortFieldCustomer  JobSortField = "customer"
)

func (f JobSortField) IsValid() bool {
	switch f {
	case JobSortFieldCreatedAt, JobSortFieldLocation, JobSortFieldCustomer:
		return true
	}
	return false
}

type ApplicationSortField string

const (
	ApplicationSortFieldScore     ApplicationSortField = "score"
	ApplicationSortFieldCreatedAt ApplicationSortField = "created_at"
)

func (f ApplicationSortField) IsValid() bool {
	return f == ApplicationSortFieldScore || f == ApplicationSortFieldCreatedAt
}
