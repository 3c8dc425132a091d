// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strconv"
)

// QuestionCount is the fixed number of questions in the survey.
const QuestionCount = 5

// SavedMessage is the confirmation returned after a response is stored
const SavedMessage = "Response saved successfully"

// Column names a groupable field of a stored response.
type Column string

const (
	ColumnProfileType Column = "profile_type"
	ColumnQuestion1   Column = "question_1"
	ColumnQuestion2   Column = "question_2"
	ColumnQuestion3   Column = "question_3"
	ColumnQuestion4   Column = "question_4"
	ColumnQuestion5   Column = "question_5"
)

var questionColumns = [QuestionCount]Column{
	ColumnQuestion1, ColumnQuestion2, ColumnQuestion3, ColumnQuestion4, ColumnQuestion5,
}

// QuestionColumn returns the column holding answers to question n (1-indexed).
func QuestionColumn(n int) (Column, error) {
	if n < 1 || n > QuestionCount {
		return "", fmt.Errorf("question %d out of range 1..%d", n, QuestionCount)
	}
	return questionColumns[n-1], nil
}

// Valid reports whether c is one of the known columns.
// Column values are interpolated into SQL, so anything else must be refused.
func (c Column) Valid() bool {
	if c == ColumnProfileType {
		return true
	}
	for _, q := range questionColumns {
		if c == q {
			return true
		}
	}
	return false
}

// Request types

// SaveResponseRequest is the body of a save-response call.
// Every field is optional; see ToSubmission for the defaults.
type SaveResponseRequest struct {
	ProfileType string            `json:"profileType"`
	Answers     map[string]string `json:"answers"`
}

// ToSubmission fills in defaults: a missing profile type or answer becomes "".
// Answer keys other than "1".."5" are ignored.
func (r SaveResponseRequest) ToSubmission() Submission {
	s := Submission{ProfileType: r.ProfileType}
	for i := range s.Answers {
		s.Answers[i] = r.Answers[strconv.Itoa(i+1)]
	}
	return s
}

// Response types

type SaveResponseResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ProfileCount struct {
	Profile string `json:"profile"`
	Count   int    `json:"count"`
}

type AnswerCount struct {
	Answer string `json:"answer"`
	Count  int    `json:"count"`
}

// StatsReport is the aggregate view returned by the stats endpoint.
// QuestionStats is keyed "q1".."q5".
type StatsReport struct {
	TotalResponses int                      `json:"totalResponses"`
	ProfileStats   []ProfileCount           `json:"profileStats"`
	QuestionStats  map[string][]AnswerCount `json:"questionStats"`
}

// QuestionKey returns the QuestionStats key for question n.
func QuestionKey(n int) string {
	return "q" + strconv.Itoa(n)
}

// Domain types

// Submission is one respondent's input after defaults are applied.
// Answers[0] holds question 1.
type Submission struct {
	ProfileType string
	Answers     [QuestionCount]string
}

// SurveyResponse is a persisted submission. ID is assigned by storage.
type SurveyResponse struct {
	ID int64
	Submission
}

// GroupCount is one row of a grouped count: a distinct value and how many
// responses carry it.
type GroupCount struct {
	Value string
	Count int
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
