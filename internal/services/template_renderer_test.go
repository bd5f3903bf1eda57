package services_test

import (
	"testing"
	"time"

	"github.com/arrenda/arrenda-api/internal/services"
	"github.com/arrenda/arrenda-api/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64   { return &f }
func int32Ptr(i int32) *int32       { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestExtractVariables(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "no placeholders",
			content: "Dear tenant, your rent is due.",
			want:    []string{},
		},
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "single placeholder",
			content: "Dear {{tenant_name}},",
			want:    []string{"tenant_name"},
		},
		{
			name:    "duplicates collapse to first occurrence",
			content: "{{a}} and {{a}} and {{b}}",
			want:    []string{"a", "b"},
		},
		{
			name:    "first-occurrence order preserved",
			content: "{{due_date}} {{tenant_name}} {{rent_amount}} {{tenant_name}}",
			want:    []string{"due_date", "tenant_name", "rent_amount"},
		},
		{
			name:    "malformed braces ignored",
			content: "{{unclosed and {single}} and {{ spaced }}",
			want:    []string{},
		},
		{
			name:    "unknown names still extracted",
			content: "{{not_a_real_field}}",
			want:    []string{"not_a_real_field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ExtractVariables(tt.content))
		})
	}
}

func TestExtractVariables_RepeatedCallsAgree(t *testing.T) {
	content := "Dear {{tenant_name}}, rent of {{rent_amount}} for {{property_address}} is due on {{due_date}}. Regards, {{tenant_name}}."

	first := services.ExtractVariables(content)
	second := services.ExtractVariables(content)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"tenant_name", "rent_amount", "property_address", "due_date"}, second)
}

func TestRenderTemplateAt(t *testing.T) {
	asOf := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	leaseStart := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)

	rctx := &business.RenderContext{
		TenantName:      strPtr("Ana Costa"),
		PropertyName:    strPtr("Rua das Flores 12"),
		RentAmount:      floatPtr(750),
		LeaseStart:      timePtr(leaseStart),
		LeaseEnd:        timePtr(leaseEnd),
		PropertyAddress: strPtr("Rua das Flores 12, Lisboa"),
		Bedrooms:        int32Ptr(2),
		Bathrooms:       int32Ptr(1),
	}

	tests := []struct {
		name    string
		content string
		rctx    *business.RenderContext
		want    string
	}{
		{
			name:    "full substitution",
			content: "Dear {{tenant_name}}, rent for {{property_name}} is {{rent_amount}}.",
			rctx:    rctx,
			want:    "Dear Ana Costa, rent for Rua das Flores 12 is 750.",
		},
		{
			name:    "dates use day month year",
			content: "Lease runs {{lease_start}} to {{lease_end}}, next payment {{due_date}}.",
			rctx:    rctx,
			want:    "Lease runs 01/09/2024 to 31/08/2025, next payment 15/03/2025.",
		},
		{
			name:    "unknown placeholder left untouched",
			content: "Hello {{tenant_name}}, code {{access_code}}.",
			rctx:    rctx,
			want:    "Hello Ana Costa, code {{access_code}}.",
		},
		{
			name:    "missing fields render a label",
			content: "Dear {{tenant_name}}, property has {{bedrooms}} bedrooms.",
			rctx:    &business.RenderContext{},
			want:    "Dear tenant name, property has bedrooms bedrooms.",
		},
		{
			name:    "nil context behaves like empty context",
			content: "{{property_address}} / {{due_date}}",
			rctx:    nil,
			want:    "property address / 15/03/2025",
		},
		{
			name:    "numeric fields",
			content: "{{bedrooms}} bed, {{bathrooms}} bath",
			rctx:    rctx,
			want:    "2 bed, 1 bath",
		},
		{
			name:    "no placeholders passes through",
			content: "Plain text with no variables.",
			rctx:    rctx,
			want:    "Plain text with no variables.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.RenderTemplateAt(tt.content, tt.rctx, asOf))
		})
	}
}

func TestRenderTemplateAt_Deterministic(t *testing.T) {
	asOf := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	content := "Payment of {{rent_amount}} due {{due_date}}."
	rctx := &business.RenderContext{RentAmount: floatPtr(820.50)}

	first := services.RenderTemplateAt(content, rctx, asOf)
	second := services.RenderTemplateAt(content, rctx, asOf)
	assert.Equal(t, first, second)
	assert.Equal(t, "Payment of 820.5 due 02/01/2025.", first)
}

func TestRenderTemplateAt_NoReExpansion(t *testing.T) {
	asOf := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	// A tenant name containing template syntax must come through literally.
	rctx := &business.RenderContext{TenantName: strPtr("{{rent_amount}}")}
	got := services.RenderTemplateAt("Dear {{tenant_name}}.", rctx, asOf)
	assert.Equal(t, "Dear {{rent_amount}}.", got)
}

func TestRenderTemplate_UsesCurrentDate(t *testing.T) {
	rctx := &business.RenderContext{}
	got := services.RenderTemplate("Due {{due_date}}.", rctx)
	want := "Due " + time.Now().Format("02/01/2006") + "."
	assert.Equal(t, want, got)
}
