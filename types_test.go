package proofdoc

import (
	"errors"
	"testing"
)

func TestRenderContextValidate(t *testing.T) {
	tests := []struct {
		name    string
		rc      RenderContext
		wantErr error
	}{
		{
			name:    "valid minimal",
			rc:      RenderContext{Template: &Template{ContentHTML: "<p>{USER}</p>"}},
			wantErr: nil,
		},
		{
			name: "valid at image limit",
			rc: RenderContext{
				Template: &Template{ContentHTML: "<p>x</p>"},
				Images:   make([]ImageRef, MaxImages),
			},
			wantErr: nil,
		},
		{
			name:    "nil template",
			rc:      RenderContext{},
			wantErr: ErrMissingTemplate,
		},
		{
			name:    "blank template content",
			rc:      RenderContext{Template: &Template{ContentHTML: "   \n\t"}},
			wantErr: ErrMissingTemplate,
		},
		{
			name: "too many images",
			rc: RenderContext{
				Template: &Template{ContentHTML: "<p>x</p>"},
				Images:   make([]ImageRef, MaxImages+1),
			},
			wantErr: ErrTooManyImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rc.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
