package domain

import (
	interfaces "megolmkeys/internal/domain/interfaces"
	types "megolmkeys/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionRecord = types.SessionRecord
	SessionHandle = types.SessionHandle
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyExportStore = interfaces.KeyExportStore
	SessionView    = interfaces.SessionView
)
