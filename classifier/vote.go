package classifier

import (
	"github.com/viant/gesture-knn/dataset"
	"github.com/viant/gesture-knn/index"
)

// tally counts one vote per neighbor. The label with the most votes wins;
// ties go to the lowest class id. Out-of-range labels are ignored.
func tally(neighbors []index.Neighbor) Prediction {
	var p Prediction
	for _, n := range neighbors {
		if n.Label < 0 || n.Label >= dataset.NumClasses {
			continue
		}
		p.Votes[n.Label]++
	}
	maxVotes := 0
	for class, votes := range p.Votes {
		if votes > maxVotes {
			maxVotes = votes
			p.Label = class
		}
	}
	if len(neighbors) > 0 {
		p.Confidence = float32(maxVotes) / float32(len(neighbors))
	}
	return p
}
