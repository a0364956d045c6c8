/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package tsstrings

import "errors"

var ErrUnknownWritingSystem = errors.New("unknown writing system")
