package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionName = "painel-admin-session"

// flash guarda uma mensagem para a próxima página. tipo é "success" ou "error".
func flash(c *gin.Context, store *sessions.CookieStore, log *zap.Logger, tipo, msg string) {
	session, _ := store.Get(c.Request, sessionName)
	session.AddFlash(msg, tipo)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Warn("erro ao salvar sessão", zap.Error(err))
	}
}

// comFlashes consome as mensagens pendentes da sessão e as coloca em dados.
func comFlashes(c *gin.Context, store *sessions.CookieStore, log *zap.Logger, dados gin.H) gin.H {
	session, _ := store.Get(c.Request, sessionName)
	dados["FlashesSuccess"] = session.Flashes("success")
	dados["FlashesError"] = session.Flashes("error")
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Warn("erro ao salvar sessão", zap.Error(err))
	}
	return dados
}
