package parrot_test

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/agbru/parrotcalc/internal/errors"
	"github.com/agbru/parrotcalc/internal/parrot"
)

// ExampleSpeed shows the speed of each variant under a light load.
func ExampleSpeed() {
	cfg := parrot.Config{NumberOfCoconuts: 1, Voltage: 1.5}
	for _, v := range parrot.Variants() {
		s, _ := parrot.Speed(v, cfg)
		fmt.Printf("%s: %.1f\n", v, s)
	}
	// Output:
	// european: 12.0
	// african: 3.0
	// norwegian_blue: 18.0
}

// ExampleParseVariant demonstrates the string selector path and its error.
func ExampleParseVariant() {
	fmt.Println(parrot.Names())

	v, err := parrot.ParseVariant("Norwegian-Blue")
	fmt.Println(v, err)

	_, err = parrot.ParseVariant("macaw")
	fmt.Println(err, errors.Is(err, apperrors.ErrUnknownVariant))
	// Output:
	// [african european norwegian_blue]
	// norwegian_blue <nil>
	// unknown parrot variant "macaw" true
}

// ExampleCalculator_SpeedByName demonstrates the instrumented calculator.
func ExampleCalculator_SpeedByName() {
	calc := parrot.NewCalculator()

	s, err := calc.SpeedByName(context.Background(), "norwegian_blue", parrot.Config{Voltage: 4})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(s)
	// Output:
	// 24
}
