package view

// User-facing copy. It matches the web client word for word.
const (
	MsgLoginSuccess    = "Login realizado com sucesso!"
	MsgUserNotFound    = "Usuário não encontrado."
	MsgWrongPassword   = "Senha incorreta."
	MsgLoginFailed     = "Ocorreu um erro ao fazer login."
	MsgSessionExpired  = "Sua sessão expirou. Por favor, faça o login novamente."
	MsgRegisterSuccess = "Conta criada com sucesso!"
	MsgEmailInUse      = "O email %s já está em uso."
	MsgRegisterFailed  = "Ocorreu um erro ao criar sua conta."

	MsgAlreadyVerified    = "Você já verificou seu email."
	MsgInvalidVerifyLink  = "Link de verificação inválido."
	MsgEmailVerified      = "Email verificado com sucesso!"
	MsgVerifyFailed       = "Ocorreu um erro ao verificar seu email."
	MsgVerificationSent   = "O email de verificação foi enviado para %s."
	MsgVerificationFailed = "Ocorreu um erro ao enviar o email de verificação."

	MsgDetailsUpdated      = "Dados atualizados com sucesso!"
	MsgDetailsFailed       = "Ocorreu um erro ao atualizar seus dados."
	MsgPasswordChanged     = "Senha alterada com sucesso!"
	MsgWrongCurrentPass    = "A senha atual está incorreta."
	MsgSamePassword        = "A nova senha não pode ser igual à senha atual."
	MsgNotificationsOK     = "Notificações %s com sucesso!"
	MsgNotificationsFailed = "Ocorreu um erro ao %s as notificações."
	MsgAccountDeleted      = "Conta excluída com sucesso."
	MsgAccountDeleteFailed = "Ocorreu um erro ao excluir sua conta."
	MsgSearchHistoryFailed = "Ocorreu um erro ao buscar seu histórico de pesquisa de jogos."

	MsgGamesFailed        = "Ocorreu um erro ao buscar os jogos da %s."
	MsgWishlistAdded      = "%s foi adicionado à sua lista de desejos!"
	MsgWishlistDuplicate  = "%s já está na sua lista de desejos."
	MsgWishlistAddFailed  = "Ocorreu um erro ao adicionar %s à sua lista de desejos."
	MsgWishlistLoadFailed = "Ocorreu um erro ao buscar os jogos da sua lista de desejos."
	MsgWishlistRemoved    = "%s foi removido da sua lista de desejos."
	MsgWishlistRemoveFail = "Ocorreu um erro ao remover %s da sua lista de desejos."
	MsgVerifyForAlerts    = "Verifique seu email para receber notificações de promoções dos jogos da sua lista de desejos!"
	MsgEnableAlerts       = "Ative as notificações para receber promoções dos jogos da sua lista de desejos em seu email!"

	MsgReviewFindFailed     = "Ocorreu um erro ao buscar a review do jogo."
	MsgReviewGenerateFailed = "Ocorreu um erro ao gerar a review do jogo."
	MsgReviewCreated        = "Review criada com sucesso!"
	MsgReviewCreateFailed   = "Ocorreu um erro ao criar a review."
	MsgReviewEdited         = "Review editada com sucesso!"
	MsgReviewEditFailed     = "Ocorreu um erro ao editar a review."
	MsgReviewDeleted        = "Review excluída com sucesso!"
	MsgReviewDeleteFailed   = "Ocorreu um erro ao excluir a review."

	MsgNoAccess          = "Você não possui acesso a esta página."
	MsgUsersFailed       = "Ocorreu um erro ao buscar os usuários."
	MsgRolesChanged      = "Permissões do usuário alteradas com sucesso!"
	MsgRolesChangeFailed = "Ocorreu um erro ao alterar as permissões do usuário."
	MsgNoActionAvailable = "Nenhuma ação disponível."
)

// WrongPasswordBody is the 400 body the backend sends for a bad password.
const WrongPasswordBody = "Wrong password."
