// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package validate

import (
	"errors"
	"math"
	"strings"
	"testing"

	"piemarker/internal/model"
	"piemarker/internal/pie"
	"piemarker/internal/pieicon"
)

func TestValidateDefinition(t *testing.T) {

	t.Parallel()

	negative := -1
	valid := func() *model.Definition {
		return &model.Definition{
			ID:    "0b8f7b8e-3c55-4f4e-9b6f-2f7a4b0c9d11",
			Title: "poll",
			Lat:   10,
			Lng:   20,
			Icon: model.Icon{Data: []pie.SliceInput{
				{Value: 1, Color: "red"},
				{Value: 2, Color: "blue"},
			}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(d *model.Definition)
		wantErr error
	}{
		{name: "valid", mutate: func(*model.Definition) {}},
		{name: "empty id", mutate: func(d *model.Definition) { d.ID = "" }},
		{name: "empty data", mutate: func(d *model.Definition) { d.Icon.Data = nil }},
		{name: "bad id", mutate: func(d *model.Definition) { d.ID = "42" }, wantErr: ErrInvalidDefinition},
		{name: "long title", mutate: func(d *model.Definition) { d.Title = strings.Repeat("я", maxTitleLength+1) }, wantErr: ErrInvalidDefinition},
		{name: "latitude", mutate: func(d *model.Definition) { d.Lat = 91 }, wantErr: ErrInvalidDefinition},
		{name: "nan longitude", mutate: func(d *model.Definition) { d.Lng = math.NaN() }, wantErr: ErrInvalidDefinition},
		{name: "negative value", mutate: func(d *model.Definition) { d.Icon.Data[0].Value = -1 }, wantErr: pie.ErrInvalidValue},
		{name: "zero total", mutate: func(d *model.Definition) { d.Icon.Data[0].Value, d.Icon.Data[1].Value = 0, 0 }, wantErr: pie.ErrZeroTotal},
		{name: "precision", mutate: func(d *model.Definition) { d.Icon.Precision = &negative }, wantErr: pie.ErrInvalidPrecision},
		{name: "size", mutate: func(d *model.Definition) { d.Icon.IconSize = &model.Size{Width: 0, Height: 10} }, wantErr: pieicon.ErrInvalidSize},
		{name: "too many slices", mutate: func(d *model.Definition) {
			d.Icon.Data = make([]pie.SliceInput, maxSlices+1)
			for i := range d.Icon.Data {
				d.Icon.Data[i].Value = 1
			}
		}, wantErr: ErrInvalidDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := valid()
			tt.mutate(d)
			err := ValidateDefinition(d)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateDefinition() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("error %v does not wrap ErrInvalidDefinition", err)
			}
		})
	}
}

func TestValidateDefinition_nil(t *testing.T) {

	t.Parallel()

	if err := ValidateDefinition(nil); !errors.Is(err, ErrInvalidDefinition) {
		t.Errorf("ValidateDefinition(nil) error = %v", err)
	}
}
