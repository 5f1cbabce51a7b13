package dts

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xbrlware/tqa/docbuilder"
	"github.com/xbrlware/tqa/xmltree"
)

// memBuilder serves documents from a map and records build calls. Builds
// within a round run concurrently, so the call log takes a lock.
type memBuilder struct {
	docs map[string]string

	mu    sync.Mutex
	calls []string
}

func (b *memBuilder) Build(uri string) (*xmltree.Document, error) {
	content, ok := b.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document %s not found", uri)
	}
	b.mu.Lock()
	b.calls = append(b.calls, uri)
	b.mu.Unlock()
	return xmltree.ParseString(content, uri)
}

func TestCollectClosure(t *testing.T) {
	builder := &memBuilder{docs: map[string]string{
		"http://example.com/entry.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    xmlns:link="http://www.xbrl.org/2003/linkbase"
    xmlns:xlink="http://www.w3.org/1999/xlink" targetNamespace="urn:entry">
  <xs:import namespace="urn:core" schemaLocation="core.xsd"/>
  <xs:annotation><xs:appinfo>
    <link:linkbaseRef xlink:type="simple" xlink:href="labels.xml"/>
  </xs:appinfo></xs:annotation>
</xs:schema>`,
		"http://example.com/core.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    targetNamespace="urn:core">
  <xs:include schemaLocation="shared/part.xsd"/>
</xs:schema>`,
		"http://example.com/shared/part.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
    targetNamespace="urn:core"/>`,
		"http://example.com/labels.xml": `<link:linkbase
    xmlns:link="http://www.xbrl.org/2003/linkbase"/>`,
	}}

	docs, err := Collect(builder, []string{"http://example.com/entry.xsd"})
	require.NoError(t, err)

	var uris []string
	for _, doc := range docs {
		uris = append(uris, doc.URI())
	}
	assert.Equal(t, []string{
		"http://example.com/entry.xsd",
		"http://example.com/core.xsd",
		"http://example.com/labels.xml",
		"http://example.com/shared/part.xsd",
	}, uris)
}

func TestCollectFetchesEachDocumentOnce(t *testing.T) {
	// a imports b and c; b imports c; c imports a. The cycle terminates
	// and every document is built exactly once.
	builder := &memBuilder{docs: map[string]string{
		"http://example.com/a.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:a">
  <xs:import namespace="urn:b" schemaLocation="b.xsd"/>
  <xs:import namespace="urn:c" schemaLocation="c.xsd"/>
</xs:schema>`,
		"http://example.com/b.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:b">
  <xs:import namespace="urn:c" schemaLocation="c.xsd"/>
</xs:schema>`,
		"http://example.com/c.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:c">
  <xs:import namespace="urn:a" schemaLocation="a.xsd"/>
</xs:schema>`,
	}}

	docs, err := Collect(builder, []string{"http://example.com/a.xsd"})
	require.NoError(t, err)
	assert.Len(t, docs, 3)
	assert.Len(t, builder.calls, 3)
}

func TestCollectStripsFragmentsAndDuplicates(t *testing.T) {
	builder := &memBuilder{docs: map[string]string{
		"http://example.com/a.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:a"/>`,
	}}

	docs, err := Collect(builder, []string{
		"http://example.com/a.xsd#someId",
		"http://example.com/a.xsd",
		"",
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "http://example.com/a.xsd", docs[0].URI())
}

func TestCollectPropagatesBuildErrors(t *testing.T) {
	builder := &memBuilder{docs: map[string]string{
		"http://example.com/entry.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:e">
  <xs:import namespace="urn:gone" schemaLocation="gone.xsd"/>
</xs:schema>`,
	}}

	_, err := Collect(builder, []string{"http://example.com/entry.xsd"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "gone.xsd")

	builder = &memBuilder{docs: map[string]string{}}
	_, err = Collect(builder, []string{"http://example.com/missing.xsd"})
	require.Error(t, err)
}

func TestCollectCachedBuilder(t *testing.T) {
	inner := &memBuilder{docs: map[string]string{
		"http://example.com/a.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:a"/>`,
	}}
	cached, err := docbuilder.NewCachingBuilder(inner, 8)
	require.NoError(t, err)

	first, err := Collect(cached, []string{"http://example.com/a.xsd"})
	require.NoError(t, err)
	second, err := Collect(cached, []string{"http://example.com/a.xsd"})
	require.NoError(t, err)
	require.Len(t, inner.calls, 1)
	assert.Same(t, first[0], second[0])
}
