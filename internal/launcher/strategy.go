// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import "slices"

const (
	// StrategyInProcess creates the Java VM inside the current process.
	StrategyInProcess Strategy = "in-process"
	// StrategyProcessReplace replaces the current process image with the
	// bundled java executable.
	StrategyProcessReplace Strategy = "process-replace"
)

// Strategy is the way the Java application is launched.
type Strategy string

func (s Strategy) isKnown() bool {
	knownStrategies := []Strategy{
		StrategyInProcess,
		StrategyProcessReplace,
	}

	return slices.Contains(knownStrategies, s)
}

// String implements [fmt.Stringer].
func (s Strategy) String() string {
	if !s.isKnown() {
		return ""
	}

	return string(s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Strategy) MarshalText() ([]byte, error) {
	str := s.String()
	if str == "" {
		return nil, ErrStrategyInvalid
	}

	return []byte(str), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Strategy) UnmarshalText(text []byte) error {
	strategy := Strategy(text)

	if !strategy.isKnown() {
		return ErrStrategyInvalid
	}

	*s = strategy

	return nil
}
