package modelsel_test

import (
	"fmt"

	"github.com/lucidbci/ssvep/modelsel"
)

// ExampleGenerateKFoldIndices partitions one subject's 24 trials
// (2 classes × 2 sessions × 6 trials) into 6 stratified folds and
// reassembles fold 0's train/validate/test triple.
func ExampleGenerateKFoldIndices() {
	var meta []modelsel.TrialMeta
	for ses := 0; ses < 2; ses++ {
		for rep := 0; rep < 6; rep++ {
			for cls := 0; cls < 2; cls++ {
				meta = append(meta, modelsel.TrialMeta{Subject: 1, Session: ses, Label: cls})
			}
		}
	}

	rng := modelsel.NewRNG(38)
	assign, err := modelsel.GenerateKFoldIndices(meta, 6, rng)
	if err != nil {
		fmt.Println("generation failed:", err)

		return
	}

	train, validate, test, err := modelsel.MatchKFoldIndices(0, assign)
	if err != nil {
		fmt.Println("match failed:", err)

		return
	}
	fmt.Println("train:", len(train), "validate:", len(validate), "test:", len(test))
	// Output:
	// train: 16 validate: 4 test: 4
}
