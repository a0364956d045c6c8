/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package main

import "errors"

var ErrMissingDocument = errors.New("document is not specified")

var ErrClassNotFound = errors.New("class not found")

var ErrObjectNotFound = errors.New("object not found")

var ErrInvalidKindMask = errors.New("invalid kind mask")
