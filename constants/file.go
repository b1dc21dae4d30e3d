package constants

import "time"

// ContentTypePDF is the content type presigned upload URLs are scoped to by default.
const ContentTypePDF = "application/pdf"

// PDFExtension is appended to every generated object key.
const PDFExtension = ".pdf"

// PresignedURLTTL is the lifetime of presigned upload and download URLs.
const PresignedURLTTL = time.Hour

// DocumentTypeOfferingMemorandum is the fixed documentType of every extracted record.
const DocumentTypeOfferingMemorandum = "Offering Memorandum"

// DateFormat is the wire format for dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"
