// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LinksResponse is the narrow, typed view of a ScholExplorer Links payload
// used by the compare stage. The fetch stage never uses it: stored artifacts
// are treated as opaque JSON, and any fields beyond these are ignored here.
type LinksResponse struct {
	Result []Link `json:"result"`
}

// Link is one scholarly relationship between a source and a target entity.
type Link struct {
	Source LinkEntity `json:"source"`
	Target LinkEntity `json:"target"`
}

// LinkEntity is one side of a link. Either side may carry DOI identifiers.
type LinkEntity struct {
	Identifiers []LinkIdentifier `json:"Identifier"`
}

// LinkIdentifier is a persistent identifier with its scheme (e.g. "doi").
type LinkIdentifier struct {
	ID     string `json:"ID"`
	Scheme string `json:"IDScheme"`
}
