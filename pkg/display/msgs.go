package display

// Output messages
const (
	MsgExcluded        = "(excluded)"
	MsgUnchanged       = "(unchanged)"
	MsgNothingToMove   = "No files to move."
	MsgExcludedHeader  = "Left in place:"
	MsgExcludedItem    = "  %s\n"
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
	MsgWouldMoveFormat = "Would move %d file(s).\n"
	MsgMovedFormat     = "Moved %d file(s) in %s"
	MsgRemovedFormat   = "Removed %d source file(s) and %d empty director(ies).\n"
	MsgDetailItem      = "  %s\n"
	MsgHintFormat      = "Hint: %s\n"
)
