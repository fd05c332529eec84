// Package stats reduces daily temperature observations to summary statistics.
package stats

import (
	"errors"
	"slices"

	"weather-stats/internal/models"
)

// ErrEmptyDataset is returned when there is nothing to summarize.
var ErrEmptyDataset = errors.New("no temperature observations to summarize")

func ExtractTemps(observations []models.Observation) []float64 {
	temps := make([]float64, len(observations))
	for i, o := range observations {
		temps[i] = o.Temp
	}
	return temps
}

func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median averages the two middle values of an even-length input. values is not modified.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	return slices.Min(values), nil
}

func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	return slices.Max(values), nil
}

// Summarize computes mean, median, min and max together.
func Summarize(values []float64) (models.Statistics, error) {
	if len(values) == 0 {
		return models.Statistics{}, ErrEmptyDataset
	}

	// The errors below cannot fire once emptiness is ruled out.
	mean, _ := Mean(values)
	median, _ := Median(values)
	lo, _ := Min(values)
	hi, _ := Max(values)

	return models.Statistics{
		Average: mean,
		Median:  median,
		Min:     lo,
		Max:     hi,
	}, nil
}
