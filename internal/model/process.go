package model

import (
	"strings"
	"time"
)

// ProcessType tells which global volume pool a process draws from.
type ProcessType string

const (
	ProcessInbound  ProcessType = "INBOUND"
	ProcessOutbound ProcessType = "OUTBOUND"
)

// inboundKeywords mark a process as INBOUND when found anywhere in its name.
var inboundKeywords = []string{"recebimento", "putaway", "inbound"}

// ClassifyProcess derives the process type from its name. Anything that does not
// look like receiving or putaway is treated as OUTBOUND.
func ClassifyProcess(name string) ProcessType {
	lower := strings.ToLower(name)
	for _, kw := range inboundKeywords {
		if strings.Contains(lower, kw) {
			return ProcessInbound
		}
	}
	return ProcessOutbound
}

// ParseProcessType accepts INBOUND/OUTBOUND in any case.
func ParseProcessType(s string) (ProcessType, bool) {
	switch ProcessType(strings.ToUpper(strings.TrimSpace(s))) {
	case ProcessInbound:
		return ProcessInbound, true
	case ProcessOutbound:
		return ProcessOutbound, true
	}
	return "", false
}

// Process is an operational process registered in the catalog
type Process struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Type classifies the process by name.
func (p Process) Type() ProcessType {
	return ClassifyProcess(p.Name)
}

// SubProcess is a step registered under a process. Not used by the calculation.
type SubProcess struct {
	ID          string    `json:"id"`
	ProcessID   string    `json:"processId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProcessInput is the payload for POST/PUT /processes
type ProcessInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubProcessInput is the payload for POST/PUT /subProcesses
type SubProcessInput struct {
	ProcessID   string `json:"processId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
