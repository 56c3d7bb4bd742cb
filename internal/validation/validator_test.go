package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type placement struct {
	Name     string `validate:"nospaces"`
	ZoneType string `validate:"zonetype"`
	Position string `validate:"bannerposition"`
	Format   string `validate:"bannerformat"`
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	Register(v)

	tests := []struct {
		name    string
		input   placement
		wantErr bool
	}{
		{
			name:  "valid placement",
			input: placement{Name: "Stockholm", ZoneType: "city", Position: "header", Format: "728x90"},
		},
		{
			name:    "blank name",
			input:   placement{Name: "   ", ZoneType: "city", Position: "header", Format: "728x90"},
			wantErr: true,
		},
		{
			name:    "unknown zone type",
			input:   placement{Name: "x", ZoneType: "continent", Position: "header", Format: "728x90"},
			wantErr: true,
		},
		{
			name:    "unknown position",
			input:   placement{Name: "x", ZoneType: "home_country", Position: "popup", Format: "728x90"},
			wantErr: true,
		},
		{
			name:    "unknown format",
			input:   placement{Name: "x", ZoneType: "home_country", Position: "footer", Format: "468x60"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
