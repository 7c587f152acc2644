package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stamp/internal/core/domain"
)

func TestRenderName(t *testing.T) {
	tests := []struct {
		name     string
		template string
		base     string
		hash     string
		ext      string
		want     string
	}{
		{
			name:     "default template",
			template: domain.DefaultTemplate,
			base:     "logo",
			hash:     "aH4urS5a6df720",
			ext:      "png",
			want:     "logo-aH4urS5a6df720.png",
		},
		{
			name:     "custom template",
			template: "{hash}_{name}.{ext}",
			base:     "app",
			hash:     "aH4urSdeadbeef",
			ext:      "css",
			want:     "aH4urSdeadbeef_app.css",
		},
		{
			name:     "wildcard hash for locator patterns",
			template: domain.DefaultTemplate,
			base:     "logo",
			hash:     "aH4urS*",
			ext:      "png",
			want:     "logo-aH4urS*.png",
		},
		{
			name:     "placeholders substitute verbatim",
			template: domain.DefaultTemplate,
			base:     "we{ird",
			hash:     "aH4urS01",
			ext:      "x",
			want:     "we{ird-aH4urS01.x",
		},
		{
			name:     "no extension",
			template: domain.DefaultTemplate,
			base:     "LICENSE",
			hash:     "aH4urS01",
			ext:      "",
			want:     "LICENSE-aH4urS01.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.RenderName(tt.template, tt.base, tt.hash, tt.ext)
			assert.Equal(t, tt.want, got)
		})
	}
}
