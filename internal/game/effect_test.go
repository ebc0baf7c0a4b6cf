package game

import (
	"errors"
	"testing"
)

func TestEffectOrPicksAnyBranch(t *testing.T) {
	or, err := NewEffectOr(
		TransformationFixed(res(Green), res(Money), 0),
		ArbitraryBasic(0, res(Car), 0),
	)
	if err != nil {
		t.Fatalf("NewEffectOr: %v", err)
	}

	if !or.Check(res(), res(Car), 0) {
		t.Error("Expected second branch to accept ([], [CAR], 0)")
	}
	if !or.Check(res(Green), res(Money), 0) {
		t.Error("Expected first branch to accept ([GREEN], [MONEY], 0)")
	}
	if or.Check(res(Red), res(Gear), 1) {
		t.Error("Expected ([RED], [GEAR], 1) to be rejected")
	}
}

func TestEffectOrRequiresChildren(t *testing.T) {
	if _, err := NewEffectOr(); !errors.Is(err, ErrEmptyEffects) {
		t.Errorf("Expected ErrEmptyEffects, got %v", err)
	}
}

func TestTransformationFixedIsOrderSensitive(t *testing.T) {
	e := TransformationFixed(res(Green, Red), res(Bulb), 1)
	if !e.Check(res(Green, Red), res(Bulb), 1) {
		t.Error("Expected exact match to pass")
	}
	if e.Check(res(Red, Green), res(Bulb), 1) {
		t.Error("Expected reordered input to fail")
	}
	if e.Check(res(Green, Red), res(Bulb), 0) {
		t.Error("Expected wrong pollution to fail")
	}
}

func TestTransformationFixedEmptyInput(t *testing.T) {
	e := TransformationFixed(nil, res(Green), 0)
	if !e.Check(nil, res(Green), 0) {
		t.Error("Expected empty input to match empty declaration")
	}
	if e.Check(res(Red), res(Green), 0) {
		t.Error("Expected non-empty input to fail against empty declaration")
	}
}

func TestArbitraryBasicCountsOnly(t *testing.T) {
	e := ArbitraryBasic(2, res(Gear), 1)
	if !e.Check(res(Car, Pollution), res(Gear), 1) {
		t.Error("Expected any two inputs to pass")
	}
	if e.Check(res(Car), res(Gear), 1) {
		t.Error("Expected one input to fail")
	}
	if e.Check(res(Car, Red), res(Gear, Gear), 1) {
		t.Error("Expected wrong output to fail")
	}
}

func TestEffectAssistance(t *testing.T) {
	plain := TransformationFixed(res(Green), res(Red), 0)
	if plain.HasAssistance() {
		t.Error("Expected plain effect without assistance")
	}
	assisted := plain.WithAssistance()
	if !assisted.HasAssistance() {
		t.Error("Expected WithAssistance to grant assistance")
	}
	if plain.HasAssistance() {
		t.Error("Expected WithAssistance to return a copy")
	}

	or, _ := NewEffectOr(plain, assisted)
	if !or.HasAssistance() {
		t.Error("Expected EffectOr to inherit a child's assistance")
	}
	st := or.State()
	if !st.Assistance || len(st.Effects) != 2 || st.Effects[0].Assistance {
		t.Errorf("Unexpected EffectOr state: %+v", st)
	}
}

func TestEffectString(t *testing.T) {
	or, _ := NewEffectOr(
		TransformationFixed(res(Green), res(Money), 0),
		ArbitraryBasic(0, res(Car), 0),
	)
	want := "EffectOr{TransformationFixed{from=[GREEN], to=[MONEY], pollution=0}, ArbitraryBasic{from=0, to=[CAR], pollution=0}}"
	if got := or.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
