package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/uvalc/uvalc/internal/domain/activity"
	"github.com/uvalc/uvalc/internal/domain/assembly"
	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/domain/project"
)

// toolset binds the tool handlers to the domain services.
type toolset struct {
	services Services
	defaults Defaults
}

func registerTools(server *sdkmcp.Server, services Services, defaults Defaults) {
	ts := &toolset{services: services, defaults: defaults}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "load_materials",
		Description: "Load a raw material catalog (CSV bytes, base64-encoded) and resolve it into the canonical schema. Unreadable input yields an empty catalog, never an error.",
	}, ts.loadMaterials)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_material_sources",
		Description: "List the loaded material catalogs",
	}, ts.listMaterialSources)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_materials",
		Description: "List resolved materials of a catalog, optionally filtered by category",
	}, ts.listMaterials)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "lookup_material",
		Description: "Resolve the thermal conductivity (lambda, W/m·K) for a material by category and name; falls back to a name-only match",
	}, ts.lookupMaterial)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_material_source",
		Description: "Delete a loaded material catalog",
	}, ts.deleteMaterialSource)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "compute_u_value",
		Description: "Compute the U-value (W/m²·K) of a layer stack against a loaded catalog, blending the normal and thermal-bridge paths by area ratio",
	}, ts.computeUValue)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_project",
		Description: "Save a layer-stack configuration as a named project",
	}, ts.saveProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a saved project with its full layer stack",
	}, ts.getProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List saved projects",
	}, ts.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a saved project",
	}, ts.deleteProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get recent catalog and project activity, newest first",
	}, ts.recentActivity)
}

// layerParams is the wire form of one layer in tool calls; it mirrors the
// layer records of the project document.
type layerParams struct {
	Order       int     `json:"order"`
	ThicknessMM float64 `json:"thickness_mm"`
	CatNormal   string  `json:"cat_normal,omitempty"`
	MatNormal   string  `json:"mat_normal,omitempty"`
	CatBridge   string  `json:"cat_bridge,omitempty"`
	MatBridge   string  `json:"mat_bridge,omitempty"`
}

func (ts *toolset) assemblyFrom(rsi, rse, ratio *float64, layers []layerParams) assembly.Assembly {
	a := assembly.Assembly{
		Rsi:         ts.defaults.Rsi,
		Rse:         ts.defaults.Rse,
		BridgeRatio: ts.defaults.BridgeRatio,
	}
	if rsi != nil {
		a.Rsi = *rsi
	}
	if rse != nil {
		a.Rse = *rse
	}
	if ratio != nil {
		a.BridgeRatio = *ratio
	}
	a.Layers = make([]assembly.Layer, 0, len(layers))
	for _, l := range layers {
		a.Layers = append(a.Layers, assembly.Layer{
			Order:       l.Order,
			ThicknessMM: l.ThicknessMM,
			Normal:      assembly.MaterialRef{Category: l.CatNormal, Material: l.MatNormal},
			Bridge:      assembly.MaterialRef{Category: l.CatBridge, Material: l.MatBridge},
		})
	}
	return a
}

func layerParamsFrom(a assembly.Assembly) []layerParams {
	layers := make([]layerParams, 0, len(a.Layers))
	for _, l := range a.Layers {
		layers = append(layers, layerParams{
			Order:       l.Order,
			ThicknessMM: l.ThicknessMM,
			CatNormal:   l.Normal.Category,
			MatNormal:   l.Normal.Material,
			CatBridge:   l.Bridge.Category,
			MatBridge:   l.Bridge.Material,
		})
	}
	return layers
}

type loadMaterialsParams struct {
	Name string `json:"name"`
	Data string `json:"data"` // base64-encoded raw CSV bytes
}

type loadMaterialsResult struct {
	SourceID    string `json:"source_id"`
	Name        string `json:"name"`
	RecordCount int    `json:"record_count"`
}

func (ts *toolset) loadMaterials(ctx context.Context, req *sdkmcp.CallToolRequest, params loadMaterialsParams) (*sdkmcp.CallToolResult, loadMaterialsResult, error) {
	raw, err := base64.StdEncoding.DecodeString(params.Data)
	if err != nil {
		return nil, loadMaterialsResult{}, &APIError{Code: "INVALID_INPUT", Message: fmt.Sprintf("data is not valid base64: %v", err)}
	}
	src, _, err := ts.services.Materials.Load(ctx, material.LoadRequest{Name: params.Name, Raw: raw})
	if err != nil {
		return nil, loadMaterialsResult{}, MapError(err)
	}
	return nil, loadMaterialsResult{SourceID: src.ID, Name: src.Name, RecordCount: src.RecordCount}, nil
}

type listMaterialSourcesResult struct {
	Sources []material.SourceInfo `json:"sources"`
}

func (ts *toolset) listMaterialSources(ctx context.Context, req *sdkmcp.CallToolRequest, params struct{}) (*sdkmcp.CallToolResult, listMaterialSourcesResult, error) {
	sources, err := ts.services.Materials.List(ctx)
	if err != nil {
		return nil, listMaterialSourcesResult{}, MapError(err)
	}
	return nil, listMaterialSourcesResult{Sources: sources}, nil
}

type listMaterialsParams struct {
	SourceID string `json:"source_id"`
	Category string `json:"category,omitempty"`
}

type listMaterialsResult struct {
	Records    []material.Record `json:"records"`
	Categories []string          `json:"categories"`
}

func (ts *toolset) listMaterials(ctx context.Context, req *sdkmcp.CallToolRequest, params listMaterialsParams) (*sdkmcp.CallToolResult, listMaterialsResult, error) {
	table, err := ts.services.Materials.Table(ctx, params.SourceID)
	if err != nil {
		return nil, listMaterialsResult{}, MapError(err)
	}
	records := table.Records()
	if params.Category != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Category == params.Category {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}
	return nil, listMaterialsResult{Records: records, Categories: table.Categories()}, nil
}

type lookupMaterialParams struct {
	SourceID string `json:"source_id"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name"`
}

type lookupMaterialResult struct {
	Lambda float64 `json:"lambda"`
}

func (ts *toolset) lookupMaterial(ctx context.Context, req *sdkmcp.CallToolRequest, params lookupMaterialParams) (*sdkmcp.CallToolResult, lookupMaterialResult, error) {
	table, err := ts.services.Materials.Table(ctx, params.SourceID)
	if err != nil {
		return nil, lookupMaterialResult{}, MapError(err)
	}
	lambda, err := material.NewIndex(table).Lookup(params.Category, params.Name)
	if err != nil {
		return nil, lookupMaterialResult{}, MapError(err)
	}
	return nil, lookupMaterialResult{Lambda: lambda}, nil
}

type deleteMaterialSourceParams struct {
	SourceID string `json:"source_id"`
}

type statusResult struct {
	Status string `json:"status"`
}

func (ts *toolset) deleteMaterialSource(ctx context.Context, req *sdkmcp.CallToolRequest, params deleteMaterialSourceParams) (*sdkmcp.CallToolResult, statusResult, error) {
	if err := ts.services.Materials.Delete(ctx, params.SourceID); err != nil {
		return nil, statusResult{}, MapError(err)
	}
	return nil, statusResult{Status: "deleted"}, nil
}

type computeUValueParams struct {
	SourceID           string        `json:"source_id"`
	Rsi                *float64      `json:"rsi,omitempty"`
	Rse                *float64      `json:"rse,omitempty"`
	ThermalBridgeRatio *float64      `json:"thermal_bridge_ratio,omitempty"`
	Layers             []layerParams `json:"layers"`
}

func (ts *toolset) computeUValue(ctx context.Context, req *sdkmcp.CallToolRequest, params computeUValueParams) (*sdkmcp.CallToolResult, assembly.Result, error) {
	table, err := ts.services.Materials.Table(ctx, params.SourceID)
	if err != nil {
		return nil, assembly.Result{}, MapError(err)
	}
	a := ts.assemblyFrom(params.Rsi, params.Rse, params.ThermalBridgeRatio, params.Layers)
	return nil, assembly.Compute(a, material.NewIndex(table)), nil
}

type saveProjectParams struct {
	ID                 string        `json:"id,omitempty"`
	Name               string        `json:"name"`
	Rsi                *float64      `json:"rsi,omitempty"`
	Rse                *float64      `json:"rse,omitempty"`
	ThermalBridgeRatio *float64      `json:"thermal_bridge_ratio,omitempty"`
	Layers             []layerParams `json:"layers"`
}

type saveProjectResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LayerCount int    `json:"layer_count"`
}

func (ts *toolset) saveProject(ctx context.Context, req *sdkmcp.CallToolRequest, params saveProjectParams) (*sdkmcp.CallToolResult, saveProjectResult, error) {
	a := ts.assemblyFrom(params.Rsi, params.Rse, params.ThermalBridgeRatio, params.Layers)
	proj, err := ts.services.Projects.Save(ctx, project.SaveRequest{ID: params.ID, Name: params.Name, Assembly: a})
	if err != nil {
		return nil, saveProjectResult{}, MapError(err)
	}
	return nil, saveProjectResult{ID: proj.ID, Name: proj.Name, LayerCount: len(a.Layers)}, nil
}

type getProjectParams struct {
	ID string `json:"id"`
}

type getProjectResult struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Rsi                float64       `json:"rsi"`
	Rse                float64       `json:"rse"`
	ThermalBridgeRatio float64       `json:"thermal_bridge_ratio"`
	Layers             []layerParams `json:"layers"`
}

func (ts *toolset) getProject(ctx context.Context, req *sdkmcp.CallToolRequest, params getProjectParams) (*sdkmcp.CallToolResult, getProjectResult, error) {
	proj, err := ts.services.Projects.Get(ctx, params.ID)
	if err != nil {
		return nil, getProjectResult{}, MapError(err)
	}
	a, err := ts.services.Projects.Load(ctx, params.ID)
	if err != nil {
		return nil, getProjectResult{}, MapError(err)
	}
	return nil, getProjectResult{
		ID:                 proj.ID,
		Name:               proj.Name,
		Rsi:                a.Rsi,
		Rse:                a.Rse,
		ThermalBridgeRatio: a.BridgeRatio,
		Layers:             layerParamsFrom(a),
	}, nil
}

type listProjectsResult struct {
	Projects []project.Summary `json:"projects"`
}

func (ts *toolset) listProjects(ctx context.Context, req *sdkmcp.CallToolRequest, params struct{}) (*sdkmcp.CallToolResult, listProjectsResult, error) {
	projects, err := ts.services.Projects.List(ctx)
	if err != nil {
		return nil, listProjectsResult{}, MapError(err)
	}
	return nil, listProjectsResult{Projects: projects}, nil
}

type deleteProjectParams struct {
	ID string `json:"id"`
}

func (ts *toolset) deleteProject(ctx context.Context, req *sdkmcp.CallToolRequest, params deleteProjectParams) (*sdkmcp.CallToolResult, statusResult, error) {
	if err := ts.services.Projects.Delete(ctx, params.ID); err != nil {
		return nil, statusResult{}, MapError(err)
	}
	return nil, statusResult{Status: "deleted"}, nil
}

type recentActivityParams struct {
	Limit int `json:"limit,omitempty"`
}

type recentActivityResult struct {
	Entries []activity.Entry `json:"entries"`
}

func (ts *toolset) recentActivity(ctx context.Context, req *sdkmcp.CallToolRequest, params recentActivityParams) (*sdkmcp.CallToolResult, recentActivityResult, error) {
	entries, err := ts.services.Activity.Recent(ctx, params.Limit)
	if err != nil {
		return nil, recentActivityResult{}, MapError(err)
	}
	return nil, recentActivityResult{Entries: entries}, nil
}
