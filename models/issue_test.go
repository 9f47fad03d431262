package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpactScore(t *testing.T) {
	tests := []struct {
		name     string
		category IssueCategory
		scope    IssueScope
		want     int
	}{
		{"health local", Health, ScopeLocal, 85},
		{"education local", Education, ScopeLocal, 80},
		{"infrastructure local", Infrastructure, ScopeLocal, 75},
		{"economy local", Economy, ScopeLocal, 90},
		{"environment local", Environment, ScopeLocal, 70},
		{"economy national", Economy, ScopeNational, 100},
		{"environment national", Environment, ScopeNational, 80},
		{"unknown category", IssueCategory("sports"), ScopeLocal, 50},
		{"unknown category national", IssueCategory("sports"), ScopeNational, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImpactScore(tt.category, tt.scope))
		})
	}
}

func TestPriorityForScore(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityForScore(100))
	assert.Equal(t, PriorityHigh, PriorityForScore(80))
	assert.Equal(t, PriorityMedium, PriorityForScore(79))
	assert.Equal(t, PriorityMedium, PriorityForScore(60))
	assert.Equal(t, PriorityLow, PriorityForScore(59))
	assert.Equal(t, PriorityLow, PriorityForScore(50))
}
