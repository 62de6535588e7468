package documents

import (
	"fmt"
	"strings"
)

const (
	maxFileSize      = 10 * 1024 * 1024
	minImageQuality  = 0.7
	acceptedMimeList = "PDF, JPEG, or PNG"
)

var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// qualityIssues flags oversized files, disallowed MIME types, and blurry
// images. Each issue is attributed to its document.
func qualityIssues(uploaded []Uploaded) []QualityIssue {
	var issues []QualityIssue
	for _, doc := range uploaded {
		if doc.Size > maxFileSize {
			issues = append(issues, QualityIssue{
				DocumentID: doc.ID,
				Message:    fmt.Sprintf("%s exceeds maximum file size of 10MB", doc.Name),
			})
		}
		// An empty MimeType means the analysis service has not reported
		// yet; only reject types it has actually identified.
		if _, ok := allowedMimeTypes[doc.MimeType]; !ok && doc.MimeType != "" {
			issues = append(issues, QualityIssue{
				DocumentID: doc.ID,
				Message:    fmt.Sprintf("%s must be a %s file", doc.Name, acceptedMimeList),
			})
		}
		if strings.HasPrefix(doc.MimeType, "image/") && doc.Quality < minImageQuality {
			issues = append(issues, QualityIssue{
				DocumentID: doc.ID,
				Message:    fmt.Sprintf("%s image quality is too low. Please provide a clearer copy", doc.Name),
			})
		}
	}
	return issues
}
