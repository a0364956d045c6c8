/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schema

// Where field definition comes from
type Provenance uint8

const (
	// Field is declared by schema document
	Provenance_Model Provenance = iota

	// Field is added by user at run time and is stored like model fields
	Provenance_Custom

	// Field has no stored backing value and is computed on demand
	Provenance_Virtual
)

func (p Provenance) String() string {
	switch p {
	case Provenance_Model:
		return "model"
	case Provenance_Custom:
		return "custom"
	case Provenance_Virtual:
		return "virtual"
	}
	return "unknown"
}
