package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"social-pulse/analyzer"
	"social-pulse/config"
	"social-pulse/dto"
	"social-pulse/models"
	"social-pulse/repositories"
)

// AnalyzeHandler godoc
// @Summary      Analyze a topic
// @Description  Expand the topic into keywords, fetch posts from the enabled sources and summarize them
// @Tags         analysis
// @Accept       json
// @Param        request  body  dto.AnalyzeRequest  true  "Analysis request"
// @Produce      json
// @Success      200  {object}  dto.AnalyzeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /analyze [post]
func AnalyzeHandler(svc *analyzer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.AnalyzeRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "topic is required"})
			return
		}

		req := analyzer.Request{
			Topic:   in.Topic,
			Sources: resolveSources(in),
			Options: resolveOptions(in),
		}

		result, err := svc.AnalyzeTopic(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, analyzer.ErrEmptyTopic) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "topic is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewAnalyzeResponse(result))
	}
}

// SuggestionsHandler godoc
// @Summary      Suggest keywords
// @Description  Generate search keyword suggestions for a topic
// @Tags         analysis
// @Accept       json
// @Param        request  body  dto.SuggestionsRequest  true  "Suggestion request"
// @Produce      json
// @Success      200  {object}  dto.SuggestionsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /suggestions [post]
func SuggestionsHandler(svc *analyzer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.SuggestionsRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "topic is required"})
			return
		}

		suggestions, err := svc.Suggestions(c.Request.Context(), in.Topic)
		if err != nil {
			if errors.Is(err, analyzer.ErrEmptyTopic) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "topic is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.SuggestionsResponse{Topic: in.Topic, Suggestions: suggestions})
	}
}

// ListAnalysesHandler godoc
// @Summary      List recent analyses
// @Description  List recently persisted analysis runs, newest first
// @Tags         analysis
// @Param        limit  query  int  false  "Max rows (<=100)"
// @Produce      json
// @Success      200  {array}  models.AnalysisRun
// @Router       /analyses [get]
func ListAnalysesHandler(repo *repositories.AnalysisRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if limit < 1 || limit > 100 {
			limit = 20
		}
		runs, err := repo.ListRecent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, runs)
	}
}

// resolveSources 는 요청의 sources / legacy platforms / 설정 기본값 순서로
// 활성 소스 목록을 결정한다.
func resolveSources(in dto.AnalyzeRequest) []models.SourceKind {
	if len(in.Sources) > 0 {
		kinds := make([]models.SourceKind, 0, len(in.Sources))
		for _, s := range in.Sources {
			kinds = append(kinds, models.SourceKind(s))
		}
		return kinds
	}

	cfg := config.GetConfig()
	if in.Platforms != nil {
		var kinds []models.SourceKind
		if in.Platforms.Twitter {
			kinds = append(kinds, twitterKind(cfg.Analysis.TwitterSource))
		}
		if in.Platforms.Reddit {
			kinds = append(kinds, models.SourceReddit)
		}
		if in.Platforms.YouTube {
			kinds = append(kinds, models.SourceYouTube)
		}
		return kinds
	}

	kinds := make([]models.SourceKind, 0, len(cfg.Analysis.DefaultSources))
	for _, s := range cfg.Analysis.DefaultSources {
		kinds = append(kinds, models.SourceKind(s))
	}
	return kinds
}

func twitterKind(configured string) models.SourceKind {
	switch configured {
	case string(models.SourceXAPI), string(models.SourceApify), string(models.SourceBrowser):
		return models.SourceKind(configured)
	default:
		return models.SourceApify
	}
}

func resolveOptions(in dto.AnalyzeRequest) models.FetchOptions {
	opts := models.FetchOptions{
		MaxItems: in.MaxItems,
		MinLikes: in.MinLikes,
		Language: in.Language,
	}
	if t, err := time.Parse("2006-01-02", in.Since); err == nil {
		opts.Since = t
	}
	if t, err := time.Parse("2006-01-02", in.Until); err == nil {
		opts.Until = t
	}
	return opts
}
