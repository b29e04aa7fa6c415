package discord

// Friendly message constants for Discord responses
const (
	MsgContainerNotFound = "❓ **Container Not Found**\nMaybe check the spelling? Try /cases for the full list."
	MsgItemNotFound      = "❓ **Item Not Found**\nNo market listing matched that name."
	MsgCatalogEmpty      = "📦 **Catalog Not Loaded**\nAn admin needs to run /sync first."
	MsgEmptyPool         = "📦 **Nothing Openable**\nThat container has no eligible items."
	MsgLedgerBusy        = "⏳ **Busy**\nThe quota ledger is temporarily unavailable. Try again in a moment."
	MsgUpstreamDown      = "🌐 **Upstream Unavailable**\nThe market data service is not responding."

	MsgGenericError = "❌ Something went wrong."
)
