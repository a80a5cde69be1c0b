package teleapp

import (
	"fmt"
	"strings"

	"github.com/fachebot/chat-tldr-bot/internal/handler"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/render"

	"github.com/zelenin/go-tdlib/client"
)

// wrapSendError 把 TDLib 的超长错误转换为调用方可识别的类型，其余错误原样返回
func wrapSendError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "MESSAGE_TOO_LONG") {
		return fmt.Errorf("%w: %v", handler.ErrMessageTooLong, err)
	}
	return err
}

// parseHTMLText 使用 TDLib 的 HTML 解析能力，将 HTML 文本转换为带实体的 FormattedText。
// 解析失败时回退为纯文本发送。
func parseHTMLText(text string) *client.FormattedText {
	if text == "" {
		return &client.FormattedText{Text: text}
	}

	formatted, err := client.ParseTextEntities(&client.ParseTextEntitiesRequest{
		Text:      text,
		ParseMode: &client.TextParseModeHTML{},
	})
	if err != nil {
		logger.Warnf("[TeleApp] 解析 HTML 文本失败，回退为纯文本发送: %v", err)
		return &client.FormattedText{Text: text}
	}
	return formatted
}

// SendText 发送纯文本消息，返回消息ID
func (app *TeleApp) SendText(chatID int64, text string) (int64, error) {
	msg, err := app.tdClient.SendMessage(&client.SendMessageRequest{
		ChatId: chatID,
		InputMessageContent: &client.InputMessageText{
			Text: &client.FormattedText{Text: text},
		},
	})
	if err != nil {
		return 0, wrapSendError(err)
	}
	return msg.Id, nil
}

// SendHTML 发送 HTML 格式消息，返回消息ID
func (app *TeleApp) SendHTML(chatID int64, text string) (int64, error) {
	msg, err := app.tdClient.SendMessage(&client.SendMessageRequest{
		ChatId: chatID,
		InputMessageContent: &client.InputMessageText{
			Text: parseHTMLText(text),
		},
	})
	if err != nil {
		return 0, wrapSendError(err)
	}
	return msg.Id, nil
}

// EditHTML 把已发送的消息改写为 HTML 格式内容
func (app *TeleApp) EditHTML(chatID int64, messageID int64, text string) error {
	_, err := app.tdClient.EditMessageText(&client.EditMessageTextRequest{
		ChatId:    chatID,
		MessageId: messageID,
		InputMessageContent: &client.InputMessageText{
			Text: parseHTMLText(text),
		},
	})
	return wrapSendError(err)
}

// IsAdmin 查询用户是否为群主或管理员
func (app *TeleApp) IsAdmin(chatID int64, userID int64) (bool, error) {
	member, err := app.tdClient.GetChatMember(&client.GetChatMemberRequest{
		ChatId:   chatID,
		MemberId: &client.MessageSenderUser{UserId: userID},
	})
	if err != nil {
		return false, err
	}

	switch member.Status.(type) {
	case *client.ChatMemberStatusCreator, *client.ChatMemberStatusAdministrator:
		return true, nil
	}
	return false, nil
}

// ChatContext 解析渲染消息链接所需的群上下文，公开群带用户名
func (app *TeleApp) ChatContext(chatID int64) render.ChatContext {
	chatCtx := render.ChatContext{ChatID: chatID}

	chat, err := app.getChat(chatID)
	if err != nil {
		logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", chatID, err)
		return chatCtx
	}

	supergroupType, ok := chat.Type.(*client.ChatTypeSupergroup)
	if !ok {
		return chatCtx
	}

	supergroup, err := app.tdClient.GetSupergroup(&client.GetSupergroupRequest{
		SupergroupId: supergroupType.SupergroupId,
	})
	if err != nil {
		logger.Warnf("[TeleApp] 获取超级群信息失败, id: %d, %v", supergroupType.SupergroupId, err)
		return chatCtx
	}
	if supergroup.Usernames != nil && len(supergroup.Usernames.ActiveUsernames) > 0 {
		chatCtx.Username = supergroup.Usernames.ActiveUsernames[0]
	}
	return chatCtx
}
