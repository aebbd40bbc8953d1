package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/crickfan/fantasy_cricket/controller"
	"github.com/crickfan/fantasy_cricket/db"
	"github.com/crickfan/fantasy_cricket/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(render *render.Render, w http.ResponseWriter, status int, msg string) {
	render.JSON(w, status, errorResponse{Error: msg})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"service": "fantasy_cricket"})
	}
}

type askRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

func askHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing request: %v", err))
			return
		}
		if err := validate.Struct(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		answer, err := ctrl.Ask(r.Context(), req.Query)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}

		render.JSON(w, http.StatusOK, answer)
	}
}

// playerSearchHandler searches the catalog when a q parameter is present and
// lists the whole catalog otherwise.
func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		var err error
		var results []model.Player
		if query != "" {
			results, err = ctrl.Search(r.Context(), query)
		} else {
			results, err = ctrl.ListPlayers(r.Context())
		}
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"q":       query,
			"results": results,
		})
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				renderError(render, w, http.StatusNotFound, "player not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, p)
	}
}

type submitTeamRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	MatchID       string   `json:"matchId" validate:"required"`
	CaptainID     string   `json:"captainId" validate:"required"`
	ViceCaptainID string   `json:"viceCaptainId" validate:"required"`
	PlayerIDs     []string `json:"playerIds" validate:"required,min=1,unique"`
}

func submitTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing request: %v", err))
			return
		}
		if err := validate.Struct(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		roster := &model.Roster{
			MatchID:       req.MatchID,
			Name:          req.Name,
			CaptainID:     req.CaptainID,
			ViceCaptainID: req.ViceCaptainID,
		}
		for _, id := range req.PlayerIDs {
			p, err := ctrl.GetPlayer(r.Context(), id)
			if err != nil {
				if errors.Is(err, db.ErrPlayerNotFound) {
					renderError(render, w, http.StatusBadRequest, fmt.Sprintf("unknown player: %s", id))
				} else {
					renderError(render, w, http.StatusInternalServerError, err.Error())
				}
				return
			}
			roster.Players = append(roster.Players, *p)
		}

		team, violations, err := ctrl.SubmitTeam(r.Context(), roster)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(violations) > 0 {
			render.JSON(w, http.StatusUnprocessableEntity, map[string]any{
				"violations": violations,
			})
			return
		}

		render.JSON(w, http.StatusCreated, team)
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "teamID"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing team id: %v", err))
			return
		}

		team, err := ctrl.GetTeam(r.Context(), int32(id))
		if err != nil {
			if errors.Is(err, db.ErrTeamNotFound) {
				renderError(render, w, http.StatusNotFound, "team not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, team)
	}
}

func listContestsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contests, err := ctrl.ListContests(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, contests)
	}
}

func getContestHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "contestID"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing contest id: %v", err))
			return
		}

		contest, err := ctrl.GetContest(r.Context(), int32(id))
		if err != nil {
			if errors.Is(err, db.ErrContestNotFound) {
				renderError(render, w, http.StatusNotFound, "contest not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, contest)
	}
}

type joinContestRequest struct {
	TeamID int32 `json:"teamId" validate:"required,gt=0"`
}

func joinContestHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contestID, err := strconv.Atoi(chi.URLParam(r, "contestID"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing contest id: %v", err))
			return
		}

		var req joinContestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing request: %v", err))
			return
		}
		if err := validate.Struct(&req); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		err = ctrl.JoinContest(r.Context(), int32(contestID), req.TeamID)
		if err != nil {
			switch {
			case errors.Is(err, db.ErrContestNotFound), errors.Is(err, db.ErrTeamNotFound):
				renderError(render, w, http.StatusNotFound, err.Error())
			case errors.Is(err, db.ErrContestFull), errors.Is(err, controller.ErrMatchMismatch):
				renderError(render, w, http.StatusConflict, err.Error())
			default:
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"status": "joined"})
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			renderError(render, w, http.StatusInternalServerError, fmt.Sprintf("error updating players: %v", err))
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{"status": "update players completed successfully"})
	}
}
