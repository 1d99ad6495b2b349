package voyager

// Entity is one raw record from an envelope's included bag. The upstream
// enforces no schema: every field access must tolerate absence or a
// mistyped value, so entities stay untyped until normalization.
type Entity map[string]any

// RawEnvelope is the upstream response shape: a primary data object plus an
// unordered, heterogeneous bag of secondary entities. Both are transient;
// they exist only between decoding and normalization.
type RawEnvelope struct {
	Data     map[string]any `json:"data"`
	Included []Entity       `json:"included"`
	Paging   *PagingInfo    `json:"paging,omitempty"`
}
