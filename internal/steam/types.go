package steam

// FileTypeMap is the published-file type code for maps. Collections mix
// maps with other content types; only maps belong in a rotation list.
const FileTypeMap = 0

// CollectionChild is one member of a workshop collection.
type CollectionChild struct {
	PublishedFileID string `json:"publishedfileid"`
	SortOrder       int    `json:"sortorder"`
	FileType        int    `json:"filetype"`
}

// CollectionDetails describes one collection and its members.
type CollectionDetails struct {
	PublishedFileID string            `json:"publishedfileid"`
	Result          int               `json:"result"`
	Children        []CollectionChild `json:"children"`
}

// CollectionDetailsResult is the payload of a GetCollectionDetails response.
type CollectionDetailsResult struct {
	Result            int                 `json:"result"`
	ResultCount       int                 `json:"resultcount"`
	CollectionDetails []CollectionDetails `json:"collectiondetails"`
}

// collectionDetailsEnvelope is the outer wrapper Steam puts around every
// Web API response.
type collectionDetailsEnvelope struct {
	Response CollectionDetailsResult `json:"response"`
}

// FileTag is a single tag attached to a published file.
type FileTag struct {
	Tag string `json:"tag"`
}

// PublishedFileDetails describes one published file; of its many fields only
// the identifier, title, and tags are consumed here.
type PublishedFileDetails struct {
	PublishedFileID string    `json:"publishedfileid"`
	Result          int       `json:"result"`
	Title           string    `json:"title"`
	Tags            []FileTag `json:"tags"`
}

// PublishedFileDetailsResult is the payload of a GetPublishedFileDetails
// response.
type PublishedFileDetailsResult struct {
	Result               int                    `json:"result"`
	ResultCount          int                    `json:"resultcount"`
	PublishedFileDetails []PublishedFileDetails `json:"publishedfiledetails"`
}

// publishedFileDetailsEnvelope is the outer response wrapper.
type publishedFileDetailsEnvelope struct {
	Response PublishedFileDetailsResult `json:"response"`
}

// HasTag reports whether the file carries the given tag label.
func (d *PublishedFileDetails) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t.Tag == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the file carries at least one of the given tags.
func (d *PublishedFileDetails) HasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if d.HasTag(tag) {
			return true
		}
	}
	return false
}
