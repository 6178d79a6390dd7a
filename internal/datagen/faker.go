//-------------------------------------------------------------------------
//
// pgEdge Retail Dataset Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen wraps gofakeit behind a small, always-seeded surface.
// The dimension builders draw names and emails from here; everything
// weighted goes through the sample package instead.
package datagen

import (
	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit. Unlike ad-hoc
// gofakeit use, a Faker always carries an explicit seed so dimension
// builds are reproducible.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a Faker with the given seed. The same seed always
// produces the same sequence of values.
func NewFaker(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Email generates a random email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Company generates a random company name.
func (f *Faker) Company() string {
	return f.faker.Company()
}

// Word generates a random word.
func (f *Faker) Word() string {
	return f.faker.Word()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Truncate truncates a string to max length if needed.
func Truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}
