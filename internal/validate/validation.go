// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package validate

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"piemarker/internal/model"
	"piemarker/internal/pieicon"
)

// ErrInvalidDefinition wraps every rejection of a marker definition.
var ErrInvalidDefinition = errors.New("invalid marker definition")

const (
	// maxTitleLength is the longest accepted title in runes.
	maxTitleLength = 200
	// maxSlices is the largest number of slices a stored icon may have.
	maxSlices = 64
)

func ValidateDefinition(def *model.Definition) error {

	if def == nil {
		return fmt.Errorf("%w: definition cannot be nil", ErrInvalidDefinition)
	}
	if def.ID != "" {
		if err := ValidateID(def.ID); err != nil {
			return err
		}
	}
	if utf8.RuneCountInString(def.Title) > maxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidDefinition, maxTitleLength)
	}
	if err := ValidateLatLng(def.Lat, def.Lng); err != nil {
		return err
	}
	return ValidateIcon(def.Icon)
}

func ValidateID(id string) error {

	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: id %q: %w", ErrInvalidDefinition, id, err)
	}
	return nil
}

func ValidateLatLng(lat, lng float64) error {

	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v is out of [-90, 90]", ErrInvalidDefinition, lat)
	}
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v is out of [-180, 180]", ErrInvalidDefinition, lng)
	}
	return nil
}

// ValidateIcon checks the icon the way the renderer will: size, precision and data.
func ValidateIcon(icon model.Icon) error {

	if len(icon.Data) > maxSlices {
		return fmt.Errorf("%w: icon has %d slices, at most %d allowed", ErrInvalidDefinition, len(icon.Data), maxSlices)
	}
	if _, err := pieicon.New(icon.Options()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return nil
}
