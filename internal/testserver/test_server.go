package testserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"github.com/uvalc/uvalc/internal/domain/activity"
	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/domain/project"
	"github.com/uvalc/uvalc/internal/mcp"
	"github.com/uvalc/uvalc/internal/sqlite"
)

// TestServer is an in-process server wired to an in-memory database, with a
// connected client session for driving tool calls.
type TestServer struct {
	DB      *sqlite.DB
	Session *sdkmcp.ClientSession
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	projectRepo := sqlite.NewProjectRepository(db)
	sourceRepo := sqlite.NewMaterialSourceRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	activitySvc := activity.NewService(activityRepo, nil)
	materialSvc := material.NewService(sourceRepo, activitySvc, nil)
	projectSvc := project.NewService(projectRepo, activitySvc, nil)

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:  projectSvc,
			Materials: materialSvc,
			Activity:  activitySvc,
		},
	})

	ctx := context.Background()
	clientTransport, serverTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.1.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = clientSession.Close()
		_ = serverSession.Wait()
		_ = db.Close()
	})

	return &TestServer{DB: db, Session: clientSession}
}

// CallTool invokes a tool and returns the structured JSON of its first text
// content block, failing the test on a tool error.
func (ts *TestServer) CallTool(t *testing.T, name string, args any) json.RawMessage {
	t.Helper()

	res := ts.callTool(t, name, args)
	require.False(t, res.IsError, "tool %s failed: %s", name, textContent(res))
	return json.RawMessage(textContent(res))
}

// CallToolErr invokes a tool expecting failure and returns the error text.
func (ts *TestServer) CallToolErr(t *testing.T, name string, args any) string {
	t.Helper()

	res := ts.callTool(t, name, args)
	require.True(t, res.IsError, "tool %s unexpectedly succeeded", name)
	return textContent(res)
}

func (ts *TestServer) callTool(t *testing.T, name string, args any) *sdkmcp.CallToolResult {
	t.Helper()

	res, err := ts.Session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func textContent(res *sdkmcp.CallToolResult) string {
	for _, content := range res.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	return ""
}
