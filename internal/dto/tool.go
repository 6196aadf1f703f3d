package dto

import "encoding/json"

// ToolResult is implemented by each tool's result variant.
type ToolResult interface {
	Succeeded() bool
}

type CalculatorResult struct {
	Success          bool        `json:"success"`
	Expression       string      `json:"expression"`
	ParsedExpression string      `json:"parsed_expression,omitempty"`
	Result           json.Number `json:"result,omitempty"`
	Natural          string      `json:"natural,omitempty"`
	Error            string      `json:"error,omitempty"`
}

func (r *CalculatorResult) Succeeded() bool { return r.Success }

type TimeResult struct {
	Success      bool   `json:"success"`
	Time         string `json:"time,omitempty"`
	Time12h      string `json:"time_12h,omitempty"`
	Date         string `json:"date,omitempty"`
	FullDatetime string `json:"full_datetime,omitempty"`
	DayOfWeek    string `json:"day_of_week,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (r *TimeResult) Succeeded() bool { return r.Success }

type WeatherResult struct {
	Success      bool   `json:"success"`
	Location     string `json:"location,omitempty"`
	Condition    string `json:"condition,omitempty"`
	Temperature  int    `json:"temperature"`
	Humidity     int    `json:"humidity"`
	WindSpeedKmh int    `json:"wind_speed_kmh"`
	Unit         string `json:"unit,omitempty"`
	Note         string `json:"note,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (r *WeatherResult) Succeeded() bool { return r.Success }

// FaultResult is reported when a tool could not be invoked at all.
type FaultResult struct {
	Error string `json:"error"`
}

func (r *FaultResult) Succeeded() bool { return false }
