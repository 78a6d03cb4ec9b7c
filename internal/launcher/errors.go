// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import "errors"

// ErrStrategyInvalid is returned for unknown launch strategies.
var ErrStrategyInvalid = errors.New("invalid launch strategy")
