// SPDX-License-Identifier: MIT

package diag

import "errors"

// ErrUnknownLevel is returned by New for a level name it does not recognize.
var ErrUnknownLevel = errors.New("diag: unknown log level")
