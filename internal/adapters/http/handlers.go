package web

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"fittrack/internal/application/orchestrators"
	"fittrack/internal/application/projections"
	exerciseDomain "fittrack/internal/domain/exercise"
	routineDomain "fittrack/internal/domain/routine"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// queryID parses the numeric id query parameter.
func queryID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	return id, err == nil && id > 0
}

// renderMarkdown converts markdown to HTML, falling back to the raw text.
func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return md
	}
	return buf.String()
}

// --- Routines ---

// routineDTO is the JSON shape of a routine.
type routineDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html,omitempty"`
	CreatedAt       string `json:"created_at"`
}

func toRoutineDTO(r routineDomain.Routine) routineDTO {
	dto := routineDTO{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.Description != "" {
		dto.DescriptionHTML = renderMarkdown(r.Description)
	}
	return dto
}

// routineInput is the JSON body for create and update.
type routineInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// routineItemDTO is one exercise slot in a routine detail response.
type routineItemDTO struct {
	EntryID       int64  `json:"entry_id"`
	ExerciseID    int64  `json:"exercise_id"`
	ExerciseName  string `json:"exercise_name"`
	PrimaryMuscle string `json:"primary_muscle"`
	OrderNum      int    `json:"order_num"`
	Sets          int    `json:"sets"`
}

// handleRoutines handles /api/routines: GET lists or fetches one (?id=),
// POST creates, PUT updates, DELETE removes.
func handleRoutines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		if id, ok := queryID(r); ok {
			deps := projections.GetRoutineDetailDeps{
				RoutineStore:  stores.RoutineStore,
				EntryStore:    stores.RoutineExerciseStore,
				ExerciseStore: stores.ExerciseStore,
			}
			result, err := projections.QueryGetRoutineDetail(ctx, id, deps)
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "routine not found", http.StatusNotFound)
				return
			}
			if err != nil {
				internalError(w, err)
				return
			}
			items := make([]routineItemDTO, 0, len(result.Items))
			for _, item := range result.Items {
				items = append(items, routineItemDTO{
					EntryID:       item.EntryID,
					ExerciseID:    item.ExerciseID,
					ExerciseName:  item.ExerciseName,
					PrimaryMuscle: item.PrimaryMuscle,
					OrderNum:      item.OrderNum,
					Sets:          item.Sets,
				})
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"routine":   toRoutineDTO(result.Routine),
				"exercises": items,
			})
			return
		}

		routines, err := stores.RoutineStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		dtos := make([]routineDTO, 0, len(routines))
		for _, rt := range routines {
			dtos = append(dtos, toRoutineDTO(rt))
		}
		writeJSON(w, http.StatusOK, dtos)

	case "POST":
		var input routineInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		rt := routineDomain.Routine{
			Name:        input.Name,
			Description: input.Description,
			CreatedAt:   timeNow(),
		}
		if err := rt.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, err := stores.RoutineStore.Create(ctx, rt)
		if err != nil {
			internalError(w, err)
			return
		}
		rt.ID = id
		slog.Info("routine_event", "event", "routine_created", "id", id, "name", rt.Name)
		writeJSON(w, http.StatusCreated, toRoutineDTO(rt))

	case "PUT":
		id, ok := queryID(r)
		if !ok {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		existing, err := stores.RoutineStore.GetByID(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		if err != nil {
			internalError(w, err)
			return
		}
		var input routineInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		existing.Name = input.Name
		existing.Description = input.Description
		if err := existing.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.RoutineStore.Update(ctx, existing); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("routine_event", "event", "routine_updated", "id", id)
		writeJSON(w, http.StatusOK, toRoutineDTO(existing))

	case "DELETE":
		id, ok := queryID(r)
		if !ok {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.RoutineStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("routine_event", "event", "routine_deleted", "id", id)
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// --- Exercises ---

// exerciseDTO is the JSON shape of a library exercise.
type exerciseDTO struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description,omitempty"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`
	ImageURI         string   `json:"image_uri,omitempty"`
}

func toExerciseDTO(e exerciseDomain.Exercise) exerciseDTO {
	return exerciseDTO{
		ID:               e.ID,
		Name:             e.Name,
		Category:         e.Category,
		Description:      e.Description,
		PrimaryMuscle:    e.PrimaryMuscle,
		SecondaryMuscles: e.SecondaryMuscles,
		ImageURI:         e.ImageURI,
	}
}

func fromExerciseDTO(dto exerciseDTO) exerciseDomain.Exercise {
	return exerciseDomain.Exercise{
		ID:               dto.ID,
		Name:             dto.Name,
		Category:         dto.Category,
		Description:      dto.Description,
		PrimaryMuscle:    dto.PrimaryMuscle,
		SecondaryMuscles: dto.SecondaryMuscles,
		ImageURI:         dto.ImageURI,
	}
}

// handleExercises handles /api/exercises: GET lists (optionally grouped via
// ?group_by=category|muscle or filtered via ?category=), POST creates,
// PUT updates, DELETE removes.
func handleExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case "GET":
		if id, ok := queryID(r); ok {
			ex, err := stores.ExerciseStore.GetByID(ctx, id)
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "exercise not found", http.StatusNotFound)
				return
			}
			if err != nil {
				internalError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toExerciseDTO(ex))
			return
		}

		if groupBy := r.URL.Query().Get("group_by"); groupBy != "" {
			if groupBy != projections.GroupByCategory && groupBy != projections.GroupByMuscle {
				http.Error(w, "group_by must be category or muscle", http.StatusBadRequest)
				return
			}
			groups, err := projections.QueryGetExerciseCatalog(ctx, groupBy, projections.GetExerciseCatalogDeps{
				ExerciseStore: stores.ExerciseStore,
			})
			if err != nil {
				internalError(w, err)
				return
			}
			type groupDTO struct {
				Label     string        `json:"label"`
				Exercises []exerciseDTO `json:"exercises"`
			}
			dtos := make([]groupDTO, 0, len(groups))
			for _, g := range groups {
				dto := groupDTO{Label: g.Label, Exercises: make([]exerciseDTO, 0, len(g.Exercises))}
				for _, ex := range g.Exercises {
					dto.Exercises = append(dto.Exercises, toExerciseDTO(ex))
				}
				dtos = append(dtos, dto)
			}
			writeJSON(w, http.StatusOK, dtos)
			return
		}

		var (
			exercises []exerciseDomain.Exercise
			err       error
		)
		if category := r.URL.Query().Get("category"); category != "" {
			exercises, err = stores.ExerciseStore.ListByCategory(ctx, category)
		} else {
			exercises, err = stores.ExerciseStore.List(ctx)
		}
		if err != nil {
			internalError(w, err)
			return
		}
		dtos := make([]exerciseDTO, 0, len(exercises))
		for _, ex := range exercises {
			dtos = append(dtos, toExerciseDTO(ex))
		}
		writeJSON(w, http.StatusOK, dtos)

	case "POST":
		var dto exerciseDTO
		if err := strictDecode(r, &dto); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		ex := fromExerciseDTO(dto)
		ex.ID = 0
		if err := ex.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, err := stores.ExerciseStore.Create(ctx, ex)
		if err != nil {
			internalError(w, err)
			return
		}
		ex.ID = id
		slog.Info("exercise_event", "event", "exercise_created", "id", id, "name", ex.Name)
		writeJSON(w, http.StatusCreated, toExerciseDTO(ex))

	case "PUT":
		id, ok := queryID(r)
		if !ok {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if _, err := stores.ExerciseStore.GetByID(ctx, id); errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		} else if err != nil {
			internalError(w, err)
			return
		}
		var dto exerciseDTO
		if err := strictDecode(r, &dto); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		ex := fromExerciseDTO(dto)
		ex.ID = id
		if err := ex.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.ExerciseStore.Update(ctx, ex); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("exercise_event", "event", "exercise_updated", "id", id)
		writeJSON(w, http.StatusOK, toExerciseDTO(ex))

	case "DELETE":
		id, ok := queryID(r)
		if !ok {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.ExerciseStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		slog.Info("exercise_event", "event", "exercise_deleted", "id", id)
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// --- Routine exercise list ---

// entryInput is one exercise slot in a replacement request. List position
// is the display order; order_num in the body is ignored.
type entryInput struct {
	ExerciseID int64 `json:"exercise_id"`
	Sets       int   `json:"sets"`
}

// handleRoutineExercises handles /api/routines/exercises: PUT replaces the
// full exercise list of one routine (?id=).
func handleRoutineExercises(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != "PUT" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, ok := queryID(r)
	if !ok {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	var body struct {
		Exercises []entryInput `json:"exercises"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entries := make([]routineDomain.ExerciseEntry, 0, len(body.Exercises))
	for _, e := range body.Exercises {
		entries = append(entries, routineDomain.ExerciseEntry{ExerciseID: e.ExerciseID, Sets: e.Sets})
	}

	input := orchestrators.ReplaceRoutineExercisesInput{RoutineID: id, Entries: entries}
	deps := orchestrators.ReplaceRoutineExercisesDeps{
		RoutineStore: stores.RoutineStore,
		EntryStore:   stores.RoutineExerciseStore,
	}
	err := orchestrators.ExecuteReplaceRoutineExercises(ctx, input, deps)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		http.Error(w, "routine not found", http.StatusNotFound)
	case errors.Is(err, routineDomain.ErrInvalidExerciseID),
		errors.Is(err, routineDomain.ErrInvalidSets):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		internalError(w, err)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"status": "replaced", "count": len(entries)})
	}
}

// --- Perf ---

// handlePerf returns the aggregated performance snapshot.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, perfCollector.TakeSnapshot(20))
}
