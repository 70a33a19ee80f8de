package money

import (
	"errors"
	"testing"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		err error
	}{
		{"10", 1000, nil},
		{"10.5", 1050, nil},
		{"10.50", 1050, nil},
		{"10.", 1000, nil},
		{"0.01", 1, nil},
		{"+2.50", 250, nil},
		{"-3.2", -320, nil},
		{"-3.07", -307, nil},
		{" 12.34 ", 1234, nil},
		{"0", 0, nil},
		{"", 0, ErrAmountRequired},
		{"   ", 0, ErrAmountRequired},
		{"abc", 0, ErrInvalidAmount},
		{"10.555", 0, ErrInvalidAmount},
		{"1,000.00", 0, ErrInvalidAmount},
		{"1e3", 0, ErrInvalidAmount},
		{"1.2.3", 0, ErrInvalidAmount},
		{".5", 0, ErrInvalidAmount},
		{"-", 0, ErrInvalidAmount},
		{"10 .5", 0, ErrInvalidAmount},
		// int64 boundary: 92233720368547758.07 is exactly MaxInt64 cents;
		// anything past it must fail rather than wrap.
		{"92233720368547758.07", 9223372036854775807, nil},
		{"92233720368547758.08", 0, ErrInvalidAmount},
		{"92233720368547758.99", 0, ErrInvalidAmount},
		{"92233720368547759", 0, ErrInvalidAmount},
		{"-92233720368547758.99", 0, ErrInvalidAmount},
		{"99999999999999999999", 0, ErrInvalidAmount},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("%q expected %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil || got != tc.out {
			t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
		}
	}
}

func TestFromMinorUnits(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{-5, "-0.05"},
		{1050, "10.50"},
		{-307, "-3.07"},
		{123456789, "1234567.89"},
	}
	for _, tc := range cases {
		if got := FromMinorUnits(tc.in); got != tc.out {
			t.Fatalf("%d expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	roundTrip := func(n int64) {
		got, err := ToMinorUnits(FromMinorUnits(n))
		if err != nil {
			t.Fatalf("round trip %d: %v", n, err)
		}
		if got != n {
			t.Fatalf("round trip %d: got %d", n, got)
		}
	}

	// Exhaustive around zero, where every fraction digit combination lives.
	for n := int64(-100_000); n <= 100_000; n++ {
		roundTrip(n)
	}
	// Prime stride across the rest of the stated range, endpoints included.
	for n := int64(-10_000_000); n <= 10_000_000; n += 991 {
		roundTrip(n)
	}
	for _, n := range []int64{-10_000_000, -999_999, 999_999, 10_000_000} {
		roundTrip(n)
	}
}
