// Package mazeapi handles maze generation, solving, and step-stream routes.
package mazeapi

import (
	"errors"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/render"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultCellPixels = 12

// Controller manages maze and solve operations.
type Controller struct {
	mazes  i.MazeManager
	solves i.SolveManager
}

// New initializes a maze Controller.
func New(mazes i.MazeManager, solves i.SolveManager) (*Controller, error) {
	return &Controller{
		mazes:  mazes,
		solves: solves,
	}, nil
}

// Register registers the maze and session routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.create)
		mazes.GET("/:ID", c.get)
		mazes.POST("/:ID/solve", c.solve)
		mazes.GET("/:ID/solve/stream", c.streamSolve)
		mazes.GET("/:ID/image", c.image)
		mazes.POST("/:ID/sessions", c.startSession)
	}

	sessions := route.Group("/sessions")
	{
		sessions.POST("/:ID/step", c.step)
		sessions.DELETE("/:ID", c.endSession)
	}
}

// create handles maze generation requests.
func (c *Controller) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	id, grid, err := c.mazes.Create(maze.Config{
		Width:         request.Width,
		Height:        request.Height,
		Seed:          seed,
		ExtraPassages: request.ExtraPassages,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(id, grid))
}

// get retrieves a registered maze.
func (c *Controller) get(ctx *gin.Context) {
	id, grid, ok := c.gridFromParam(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(id, grid))
}

// solve runs an algorithm to completion on a registered maze.
func (c *Controller) solve(ctx *gin.Context) {
	id, grid, ok := c.gridFromParam(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo, start, goal, err := resolveSolveArgs(grid, request.Algorithm, request.Start, request.Goal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.solves.Solve(id, algo, start, goal)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// streamSolve streams the step sequence of a solve as server-sent events,
// one "step" event per state transition and a final "done" event. The client
// cancels by closing the connection.
func (c *Controller) streamSolve(ctx *gin.Context) {
	id, grid, ok := c.gridFromParam(ctx)
	if !ok {
		return
	}

	algo, start, goal, err := resolveSolveArgs(grid, ctx.DefaultQuery("algorithm", string(solver.BFS)), nil, nil)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stepper, err := c.solves.NewStepper(id, algo, start, goal)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	done := ctx.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		default:
		}

		step, more := stepper.Next()
		if !more {
			ctx.SSEvent("done", gin.H{})
			return
		}
		ctx.SSEvent("step", step)
		ctx.Writer.Flush()
	}
}

// image renders a registered maze as a PNG. With an algorithm query
// parameter the solver's visited set and path are overlaid.
func (c *Controller) image(ctx *gin.Context) {
	id, grid, ok := c.gridFromParam(ctx)
	if !ok {
		return
	}

	cellPixels, err := strconv.Atoi(ctx.DefaultQuery("cell", strconv.Itoa(defaultCellPixels)))
	if err != nil || cellPixels < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid cell size"})
		return
	}

	var visited, path []maze.Position
	if name := ctx.Query("algorithm"); name != "" {
		algo, start, goal, err := resolveSolveArgs(grid, name, nil, nil)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result, err := c.solves.Solve(id, algo, start, goal)
		if err != nil {
			respondError(ctx, err)
			return
		}
		visited, path = result.Visited, result.Path
	}

	ctx.Header("Content-Type", "image/png")
	if err := png.Encode(ctx.Writer, render.New(grid, visited, path).Scaled(cellPixels)); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "encoding image"})
	}
}

// startSession starts a stepwise solve session.
func (c *Controller) startSession(ctx *gin.Context) {
	id, grid, ok := c.gridFromParam(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo, start, goal, err := resolveSolveArgs(grid, request.Algorithm, request.Start, request.Goal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := c.solves.StartSession(id, algo, start, goal)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &SessionResponse{SessionID: sessionID})
}

// step advances a stepwise solve session by exactly one step.
func (c *Controller) step(ctx *gin.Context) {
	sessionID, ok := parseID(ctx)
	if !ok {
		return
	}

	step, done, err := c.solves.NextStep(sessionID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &StepResponse{Step: step, Done: done})
}

// endSession discards a stepwise solve session.
func (c *Controller) endSession(ctx *gin.Context) {
	sessionID, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.solves.EndSession(sessionID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// gridFromParam resolves the :ID route parameter to a registered maze,
// writing the error response itself when resolution fails.
func (c *Controller) gridFromParam(ctx *gin.Context) (uuid.UUID, *maze.Grid, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return uuid.Nil, nil, false
	}

	grid, err := c.mazes.ByID(id)
	if err != nil {
		respondError(ctx, err)
		return uuid.Nil, nil, false
	}
	return id, grid, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// resolveSolveArgs parses the algorithm name and defaults missing endpoints
// to the maze's own start and goal.
func resolveSolveArgs(grid *maze.Grid, name string, start, goal *maze.Position) (solver.Algorithm, maze.Position, maze.Position, error) {
	algo, err := solver.ParseAlgorithm(name)
	if err != nil {
		return "", maze.Position{}, maze.Position{}, err
	}

	from, to := grid.Start, grid.Goal
	if start != nil {
		from = *start
	}
	if goal != nil {
		to = *goal
	}
	return algo, from, to, nil
}

func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMazeNotFound), errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
