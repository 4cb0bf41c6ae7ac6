package trca_test

import (
	"fmt"

	"github.com/lucidbci/ssvep/filterbank"
	"github.com/lucidbci/ssvep/trca"
)

// ExampleFBTRCA fits the ensemble classifier on two noiseless synthetic
// SSVEP classes (10 Hz and 15 Hz flicker, labels 10 and 15) and decodes
// two held-out trials per class.
func ExampleFBTRCA() {
	bank, err := filterbank.Design(
		[][2]float64{{5, 90}}, [][2]float64{{3, 92}}, 250, 15, 0.5)
	if err != nil {
		fmt.Println("design failed:", err)

		return
	}

	train, trainLabels := synthTrials([]float64{10, 15}, []int{10, 15}, 10, 250, 250, 0, 1)
	test, _ := synthTrials([]float64{10, 15}, []int{10, 15}, 2, 250, 250, 0, 1)

	clf, err := trca.NewFBTRCA(bank, trca.DefaultOptions())
	if err != nil {
		fmt.Println("configuration failed:", err)

		return
	}
	if err := clf.Fit(train, trainLabels); err != nil {
		fmt.Println("fit failed:", err)

		return
	}

	labels, err := clf.Predict(test)
	if err != nil {
		fmt.Println("predict failed:", err)

		return
	}
	fmt.Println("decoded:", labels)
	// Output:
	// decoded: [10 10 15 15]
}
