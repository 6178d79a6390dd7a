//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import "testing"

func TestNewFakerDeterminism(t *testing.T) {
	f1 := NewFaker(12345)
	f2 := NewFaker(12345)

	for i := 0; i < 10; i++ {
		if a, b := f1.Name(), f2.Name(); a != b {
			t.Errorf("Same seed produced different names: %q != %q", a, b)
		}
		if a, b := f1.Int(0, 1000), f2.Int(0, 1000); a != b {
			t.Errorf("Same seed produced different ints: %d != %d", a, b)
		}
	}
}

func TestFakerValues(t *testing.T) {
	f := NewFaker(1)

	if f.Name() == "" {
		t.Error("Name returned empty string")
	}
	if f.Email() == "" {
		t.Error("Email returned empty string")
	}
	if f.Company() == "" {
		t.Error("Company returned empty string")
	}
	if f.Word() == "" {
		t.Error("Word returned empty string")
	}
	for i := 0; i < 100; i++ {
		if v := f.Int(5, 10); v < 5 || v > 10 {
			t.Errorf("Int %d not in range [5, 10]", v)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 5); got != "hello" {
		t.Errorf("Truncate should cut to 5, got: %s", got)
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("Truncate should not modify shorter string, got: %s", got)
	}
}
