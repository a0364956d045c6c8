/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package graphload

// Loader stage. Stages are passed strictly in order, each once per load
type Stage uint8

const (
	Stage_null Stage = iota
	Stage_SchemaLoading
	Stage_TreeBuilding
	Stage_ReferenceResolution
	Stage_Done
)

func (s Stage) String() string {
	switch s {
	case Stage_SchemaLoading:
		return "SchemaLoading"
	case Stage_TreeBuilding:
		return "TreeBuilding"
	case Stage_ReferenceResolution:
		return "ReferenceResolution"
	case Stage_Done:
		return "Done"
	}
	return "null"
}
