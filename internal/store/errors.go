package store

import "errors"

// Sentinel errors returned by storages and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned by [KeyValueStorage.Get] when no value is
	// persisted under the requested name.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrDocumentNotFound is returned by [DocumentRepository.LoadDocument]
	// when the user has no document with the requested name.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrUnknownStorageKind is returned by [NewStorage] for an unsupported
	// storage kind.
	ErrUnknownStorageKind = errors.New("unknown storage kind")

	// ErrStorageClosed is returned by operations on a closed storage.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors. These wrap the driver error.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// File storage errors.
var (
	// ErrReadingStorageFile is returned when the storage file exists but
	// cannot be read or decoded.
	ErrReadingStorageFile = errors.New("error reading storage file")

	// ErrWritingStorageFile is returned when the storage file cannot be
	// rewritten.
	ErrWritingStorageFile = errors.New("error writing storage file")
)
