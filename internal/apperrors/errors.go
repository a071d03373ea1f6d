package apperrors

import "errors"

// Domain entity errors represent missing entities in the shop database.
var (
	// ErrOrderNotFound indicates that an order with the given ID does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// Formatting errors represent states the numeric helpers cannot turn into a result.
var (
	// ErrNoSeparator indicates that a fixed-point rendering contains no decimal separator.
	// The two-decimal rendering always produces one, so callers never see this in practice.
	ErrNoSeparator = errors.New("rendering has no decimal separator")

	// ErrInvalidFraction indicates that the digits after the separator are not a base-10 integer.
	ErrInvalidFraction = errors.New("fractional digits are not an integer")
)

// Archive errors represent malformed or unsafe archive content.
var (
	// ErrInvalidArchive indicates a missing SARCH signature or a truncated header.
	ErrInvalidArchive = errors.New("invalid archive format")

	// ErrUnsafeEntryName indicates an entry name that would be written outside the target directory.
	ErrUnsafeEntryName = errors.New("unsafe archive entry name")

	// ErrUnknownCode indicates an encoded bitstream that does not end on a known code.
	ErrUnknownCode = errors.New("bitstream does not match code table")

	// ErrEntryTooLarge indicates an entry field whose length does not fit its on-disk width.
	ErrEntryTooLarge = errors.New("archive entry field too large")

	// ErrNoInputFiles indicates a pack request without any file paths.
	ErrNoInputFiles = errors.New("no input files")
)

// Request errors represent invalid input on the HTTP surface.
var (
	// ErrMissingValue indicates that the value query parameter is absent.
	ErrMissingValue = errors.New("value parameter is required")

	// ErrInvalidValue indicates a value query parameter that is present but fails validation,
	// for example by exceeding the length limit.
	ErrInvalidValue = errors.New("invalid value parameter")

	// ErrInvalidOrderID indicates an order ID that is not a positive integer.
	ErrInvalidOrderID = errors.New("order ID must be a positive integer")
)

// Operation failure errors represent system-level failures when retrieving data.
var (
	// ErrFailedToRetrieveShopData indicates that a shop table could not be read.
	ErrFailedToRetrieveShopData = errors.New("failed to retrieve shop data")

	// ErrFailedToMigrate indicates that the embedded schema migrations could not be applied.
	ErrFailedToMigrate = errors.New("failed to migrate database")
)
