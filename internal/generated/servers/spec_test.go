package servers

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_IsValid(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))
	assert.Equal(t, "/api/v1", doc.Servers[0].URL)
}

func TestGetSwagger_DescribesEveryRoute(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	paths := []string{
		"/invoices",
		"/invoices/{invoiceId}",
		"/invoices/{invoiceId}/requirements",
		"/invoices/{invoiceId}/actions",
		"/invoices/{invoiceId}/inspections",
		"/invoices/{invoiceId}/feri",
		"/documents",
		"/documents/pending",
		"/documents/{documentId}",
		"/documents/{documentId}/acknowledge",
		"/documents/{documentId}/reject",
		"/extractions/callback",
		"/transporters",
		"/agents",
		"/transport-requests",
		"/transport-requests/{requestId}/load-confirmation",
		"/manifests",
	}
	for _, p := range paths {
		assert.NotNil(t, doc.Paths.Find(p), p)
	}
	assert.Equal(t, len(paths), doc.Paths.Len())
}

func TestServerInterface_MatchesOperations(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	iface := reflect.TypeOf((*ServerInterface)(nil)).Elem()
	operations := 0
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			operations++
			_, ok := iface.MethodByName(op.OperationID)
			assert.True(t, ok, "%s %s: ServerInterface has no %s, regenerate with go generate", method, path, op.OperationID)
		}
	}
	assert.Equal(t, iface.NumMethod(), operations)
}

func TestGenerateConfig_TargetsThisPackage(t *testing.T) {
	cfg, err := os.ReadFile("oapi-codegen.yaml")
	require.NoError(t, err)

	assert.Contains(t, string(cfg), "package: servers")
	assert.Contains(t, string(cfg), "output: servers.gen.go")
	assert.Contains(t, string(cfg), "echo-server: true")
}
