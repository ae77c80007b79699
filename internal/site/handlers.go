package site

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mtmuztaba/portfolio/internal/nav"
	"github.com/mtmuztaba/portfolio/internal/session"
	"github.com/mtmuztaba/portfolio/internal/view"
)

func (s *Server) fail(c *gin.Context, status int, msg string) {
	c.HTML(status, "error", gin.H{"error": msg})
}

// handleIndex renders the whole page. A page load starts from a fresh
// state: top of the page, everything collapsed, lightbox shut.
func (s *Server) handleIndex(c *gin.Context) {
	st := session.New()
	if v := c.Query("view"); v != "" {
		parsed, err := view.Parse(v)
		if err != nil {
			s.fail(c, http.StatusBadRequest, "Unknown view.")
			return
		}
		st.SetView(parsed)
	}
	if !s.saveState(c, st) {
		return
	}

	c.HTML(http.StatusOK, "page", s.page(st, c.Query("print") == "1"))
}

// handleView swaps the experience sections and the nav item set.
func (s *Server) handleView(c *gin.Context) {
	v, err := view.Parse(c.Param("view"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Unknown view.")
		return
	}

	st, ok := s.updateState(c, func(st *session.State) {
		st.SetView(v)
	})
	if !ok {
		return
	}

	if s.metrics != nil {
		if err := s.metrics.RecordViewSwitch(c.Request.Context(), string(v)); err != nil {
			log.Printf("Error recording view switch: %v", err)
		}
	}

	c.HTML(http.StatusOK, "view-switch", s.page(st, false))
}

// handleAccordion toggles one image block.
func (s *Server) handleAccordion(c *gin.Context) {
	key := c.Query("key")
	if _, ok := s.content.Group(key); !ok {
		s.fail(c, http.StatusNotFound, "Nothing to expand here.")
		return
	}

	st, ok := s.updateState(c, func(st *session.State) {
		st.Expanded.Toggle(key)
	})
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "gallery", s.page(st, false).Gallery(key))
}

// handleLightboxOpen opens the lightbox on an image group.
func (s *Server) handleLightboxOpen(c *gin.Context) {
	images, ok := s.content.Images(c.Query("group"))
	if !ok {
		s.fail(c, http.StatusNotFound, "Image not found.")
		return
	}
	index, err := strconv.Atoi(c.Query("index"))
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid image index.")
		return
	}

	st, ok := s.updateState(c, func(st *session.State) {
		st.Lightbox.OpenAt(images, index)
	})
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "lightbox", s.page(st, false))
}

type lightboxStep int

const (
	stepNext lightboxStep = iota
	stepPrev
	stepClose
)

func (s *Server) handleLightboxStep(step lightboxStep) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, ok := s.updateState(c, func(st *session.State) {
			switch step {
			case stepNext:
				st.Lightbox.Next()
			case stepPrev:
				st.Lightbox.Prev()
			case stepClose:
				st.Lightbox.Close()
			}
		})
		if !ok {
			return
		}

		c.HTML(http.StatusOK, "lightbox", s.page(st, false))
	}
}

// handleNav takes a scroll report and returns the re-highlighted nav.
func (s *Server) handleNav(c *gin.Context) {
	var report nav.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid scroll report.")
		return
	}

	st, ok := s.updateState(c, func(st *session.State) {
		st.Nav.Update(report, view.NavItems(st.View), s.cfg.NavThreshold)
	})
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "nav", s.page(st, false).Nav())
}

// handleLink counts a document click and redirects to it.
func (s *Server) handleLink(c *gin.Context) {
	link, ok := s.content.LinkBySlug(c.Param("slug"))
	if !ok {
		s.fail(c, http.StatusNotFound, "Document not found.")
		return
	}

	if s.metrics != nil {
		if err := s.metrics.RecordClick(c.Request.Context(), link.Slug, link.Target); err != nil {
			log.Printf("Error recording click on %s: %v", link.Slug, err)
		}
	}
	c.Redirect(http.StatusFound, link.Target)
}
