package handler

import (
	"qrstudio/internal/usecase"
)

var (
	reviewHandler *ReviewHandler
	ticketHandler *TicketHandler
	adHandler     *AdHandler
	authHandler   *AuthHandler
	codeHandler   *CodeHandler
)

func Setup(
	reviewUseCase *usecase.ReviewUseCase,
	ticketUseCase *usecase.TicketUseCase,
	adUseCase *usecase.AdUseCase,
	authUseCase *usecase.AuthUseCase,
	codeUseCase *usecase.CodeUseCase,
) {
	reviewHandler = NewReviewHandler(reviewUseCase)
	ticketHandler = NewTicketHandler(ticketUseCase)
	adHandler = NewAdHandler(adUseCase)
	authHandler = NewAuthHandler(authUseCase)
	codeHandler = NewCodeHandler(codeUseCase)
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetTicketHandler() *TicketHandler {
	return ticketHandler
}

func GetAdHandler() *AdHandler {
	return adHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCodeHandler() *CodeHandler {
	return codeHandler
}
