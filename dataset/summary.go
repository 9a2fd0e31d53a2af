package dataset

import (
	"github.com/viant/vec/search"
	"gonum.org/v1/gonum/stat"

	"github.com/viant/gesture-knn/vector"
)

// ClassSummary describes the samples of one class.
type ClassSummary struct {
	Class    int
	Count    int
	Centroid [vector.Channels]float64
	// MeanSpread and StdSpread are the mean and standard deviation of the
	// Euclidean distance from each sample to the centroid.
	MeanSpread float64
	StdSpread  float64
}

// Summarize returns one summary per class present in labels, ordered by
// class id. Labels outside [0, NumClasses) are ignored.
func Summarize(samples []vector.Sample, labels []int) []ClassSummary {
	var byClass [NumClasses][]vector.Sample
	for i, label := range labels {
		if i >= len(samples) || label < 0 || label >= NumClasses {
			continue
		}
		byClass[label] = append(byClass[label], samples[i])
	}

	var out []ClassSummary
	for class, members := range byClass {
		if len(members) == 0 {
			continue
		}
		summary := ClassSummary{Class: class, Count: len(members)}
		for _, s := range members {
			for j, v := range s {
				summary.Centroid[j] += float64(v)
			}
		}
		centroid := make(search.Float32s, vector.Channels)
		for j := range summary.Centroid {
			summary.Centroid[j] /= float64(len(members))
			centroid[j] = float32(summary.Centroid[j])
		}

		spread := make([]float64, len(members))
		for i, s := range members {
			spread[i] = float64(centroid.EuclideanDistance(s.Float32s()))
		}
		summary.MeanSpread = stat.Mean(spread, nil)
		if len(spread) > 1 {
			summary.StdSpread = stat.StdDev(spread, nil)
		}
		out = append(out, summary)
	}
	return out
}
