package report

import "errors"

var (
	// ErrReportGeneration covers rendering, body assembly and workbook export.
	ErrReportGeneration = errors.New("report generation failed")
	// ErrDispatch covers a mailer error and a mailer that reports the message as not sent.
	ErrDispatch = errors.New("report dispatch failed")
)
