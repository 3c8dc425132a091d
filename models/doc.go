// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SaveResponseRequest: profileType, answers (map "1".."5" → string)

Missing fields are not errors. ToSubmission coerces them to empty strings:

	sub := req.ToSubmission()
	sub.Answers[0] // answer to question 1, "" if not supplied

# Response Types

  - SaveResponseResponse: id, message
  - StatsReport: totalResponses, profileStats, questionStats
  - ProfileCount: profile, count
  - AnswerCount: answer, count
  - ErrorResponse: error

# Domain Types

  - Submission: profile type plus exactly five answers
  - SurveyResponse: a stored submission with its id
  - GroupCount: distinct value and occurrence count
  - Column: groupable storage column

# Columns

	ColumnProfileType = "profile_type"
	ColumnQuestion1   = "question_1"
	...
	ColumnQuestion5   = "question_5"

Use QuestionColumn(n) and QuestionKey(n) to go from a question number to
its column and its StatsReport key.
*/
package models
