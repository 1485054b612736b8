// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"strconv"
)

// Upper bound for the number of history entries. Zero means unlimited.
const historyLimitMax = 1 << 20

var ErrValueOutOfRange = errors.New("value is outside of range")

// LimitValue is a [flag.Value] for unsigned integers not greater than Max.
type LimitValue struct {
	Value *uint64
	Max   uint64
}

func newHistoryLimitValue(value *uint64) *LimitValue {
	return &LimitValue{
		Value: value,
		Max:   historyLimitMax,
	}
}

func (l *LimitValue) String() string {
	if l.Value == nil {
		return "0"
	}

	return strconv.FormatUint(*l.Value, 10)
}

func (l *LimitValue) Set(s string) error {
	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	return l.set(value)
}

// set assigns the value if it is within range. Used for values that are not
// given as string, like config file values.
func (l *LimitValue) set(value uint64) error {
	if l.Max > 0 && value > l.Max {
		return fmt.Errorf("%d > %d: %w", value, l.Max, ErrValueOutOfRange)
	}

	if l.Value == nil {
		l.Value = new(uint64)
	}

	*l.Value = value

	return nil
}
