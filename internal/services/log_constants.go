package services

const (
	LogActionBookmarkCreate = "BOOKMARK_CREATE"
	LogActionBookmarkUpdate = "BOOKMARK_UPDATE"
	LogActionBookmarkDelete = "BOOKMARK_DELETE"
	LogActionBookmarkImport = "BOOKMARK_IMPORT"
	LogActionBookmarkExport = "BOOKMARK_EXPORT"
	LogOutcomeSuccess       = "SUCCESS"
	LogOutcomeFail          = "FAIL"
)
