package teleapp

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/handler"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/model"
	"github.com/fachebot/chat-tldr-bot/internal/svc"

	"github.com/zelenin/go-tdlib/client"
)

// MessageHandler 消费命令和私聊消息（便于测试注入 mock）
type MessageHandler interface {
	HandleCommand(ctx context.Context, event handler.CommandEvent)
	HandlePrivateMessage(ctx context.Context, event handler.PrivateMessageEvent)
}

// 机器人响应的命令集合
var knownCommands = map[string]bool{
	"/tldr":        true,
	"/tldr_help":   true,
	"/tldr_info":   true,
	"/enable":      true,
	"/disable":     true,
	"/tldr_style":  true,
	"/tldr_setkey": true,
	"/tldr_delkey": true,
}

type TeleApp struct {
	svcCtx     *svc.ServiceContext
	handler    MessageHandler
	user       *client.User
	tdClient   *client.Client
	listener   *client.Listener
	parameters *client.SetTdlibParametersRequest
	usersMu    sync.RWMutex
	usersCache map[int64]*client.User
	chatsMu    sync.RWMutex
	chatsCache map[int64]*client.Chat
	ctx        context.Context
	cancel     context.CancelFunc
	ctxMu      sync.Mutex
}

func NewApp(svcCtx *svc.ServiceContext, apiId int32, apiHash, dataDir string) *TeleApp {
	_, err := client.SetLogVerbosityLevel(&client.SetLogVerbosityLevelRequest{
		NewVerbosityLevel: 1,
	})
	if err != nil {
		logger.Fatalf("[TeleApp] 设置日志级别错误, %s", err)
	}

	parameters := &client.SetTdlibParametersRequest{
		UseTestDc:           false,
		DatabaseDirectory:   filepath.Join(dataDir, ".tdlib", "database"),
		FilesDirectory:      filepath.Join(dataDir, ".tdlib", "files"),
		UseFileDatabase:     true,
		UseChatInfoDatabase: true,
		UseMessageDatabase:  true,
		UseSecretChats:      false,
		ApiId:               apiId,
		ApiHash:             apiHash,
		SystemLanguageCode:  "en",
		DeviceModel:         "Server",
		SystemVersion:       "1.0.0",
		ApplicationVersion:  "1.0.0",
	}

	app := &TeleApp{
		svcCtx:     svcCtx,
		parameters: parameters,
		chatsCache: make(map[int64]*client.Chat),
		usersCache: make(map[int64]*client.User),
	}
	return app
}

// SetHandler 注入消息处理器，必须在 Login 之前调用
func (app *TeleApp) SetHandler(h MessageHandler) {
	app.handler = h
}

func (app *TeleApp) Login(options ...client.Option) (*client.User, error) {
	if app.user != nil {
		return app.user, nil
	}

	authorizer := client.ClientAuthorizer(app.parameters)
	go client.CliInteractor(authorizer)

	tdlibClient, err := client.NewClient(authorizer, options...)
	if err != nil {
		return nil, err
	}

	me, err := tdlibClient.GetMe()
	if err != nil {
		return nil, err
	}

	app.user = me
	app.tdClient = tdlibClient

	chats, err := app.tdClient.GetChats(&client.GetChatsRequest{Limit: 100})
	if err != nil {
		logger.Warnf("[TeleApp] 获取聊天列表失败: %v", err)
	} else {
		for _, chatId := range chats.ChatIds {
			chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", chatId, err)
				continue
			}
			logger.Infof("[TeleApp] 聊天列表: %s[%d]", chat.Title, chat.Id)
		}
	}

	listener := tdlibClient.GetListener()
	app.listener = listener

	app.ctxMu.Lock()
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.ctxMu.Unlock()

	go app.getUpdates(listener)

	return me, nil
}

func (app *TeleApp) Client() *client.Client {
	return app.tdClient
}

func (app *TeleApp) Close() error {
	if app.tdClient == nil {
		return nil
	}

	app.ctxMu.Lock()
	if app.cancel != nil {
		app.cancel()
	}
	app.ctxMu.Unlock()

	if app.listener != nil {
		app.listener.Close()
	}

	_, err := app.tdClient.Close()
	return err
}

func (app *TeleApp) getChat(chatId int64) (*client.Chat, error) {
	// 先尝试读锁读取缓存
	app.chatsMu.RLock()
	chat, ok := app.chatsCache[chatId]
	app.chatsMu.RUnlock()
	if ok {
		return chat, nil
	}

	// 缓存未命中，获取数据
	chat, err := app.tdClient.GetChat(&client.GetChatRequest{ChatId: chatId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.chatsMu.Lock()
	app.chatsCache[chatId] = chat
	app.chatsMu.Unlock()
	return chat, nil
}

func (app *TeleApp) getUser(userId int64) (*client.User, error) {
	// 先尝试读锁读取缓存
	app.usersMu.RLock()
	user, ok := app.usersCache[userId]
	app.usersMu.RUnlock()
	if ok {
		return user, nil
	}

	// 缓存未命中，获取数据
	user, err := app.tdClient.GetUser(&client.GetUserRequest{UserId: userId})
	if err != nil {
		return nil, err
	}

	// 写锁更新缓存
	app.usersMu.Lock()
	app.usersCache[userId] = user
	app.usersMu.Unlock()
	return user, nil
}

// senderInfo 从消息的 SenderId 提取发送者信息，频道署名消息的发送者是 Chat
type senderInfo struct {
	id            int64
	name          string
	username      *string
	isBot         bool
	isChannelPost bool
}

func (app *TeleApp) resolveSender(message *client.Message) (senderInfo, bool) {
	if message.SenderId == nil {
		return senderInfo{}, false
	}

	switch sender := message.SenderId.(type) {
	case *client.MessageSenderUser:
		user, err := app.getUser(sender.UserId)
		if err != nil {
			logger.Warnf("[TeleApp] 获取用户信息失败, id: %d, %v", sender.UserId, err)
			return senderInfo{}, false
		}

		info := senderInfo{id: sender.UserId, name: user.FirstName}
		if user.LastName != "" {
			info.name += " " + user.LastName
		}
		if user.Usernames != nil && len(user.Usernames.ActiveUsernames) > 0 {
			username := "@" + user.Usernames.ActiveUsernames[0]
			info.username = &username
		}
		if _, ok := user.Type.(*client.UserTypeBot); ok {
			info.isBot = true
		}
		return info, true
	case *client.MessageSenderChat:
		chat, err := app.getChat(sender.ChatId)
		if err != nil {
			logger.Warnf("[TeleApp] 获取发送者聊天信息失败, id: %d, %v", sender.ChatId, err)
			return senderInfo{}, false
		}
		return senderInfo{id: sender.ChatId, name: chat.Title, isChannelPost: true}, true
	}
	return senderInfo{}, false
}

// parseCommand 识别命令消息，去掉 @机器人 后缀，返回命令和原始参数串
func parseCommand(text string) (string, string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	parts := strings.SplitN(text, " ", 2)
	cmd := parts[0]
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	cmd = strings.ToLower(cmd)
	if !knownCommands[cmd] {
		return "", "", false
	}

	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}
	return cmd, args, true
}

// replyToMessageID 提取被回复消息的ID，仅认同群内的回复
func replyToMessageID(message *client.Message) int64 {
	if message.ReplyTo == nil {
		return 0
	}
	if replyTo, ok := message.ReplyTo.(*client.MessageReplyToMessage); ok && replyTo.ChatId == message.ChatId {
		return replyTo.MessageId
	}
	return 0
}

func (app *TeleApp) getUpdates(listener *client.Listener) {
	app.ctxMu.Lock()
	ctx := app.ctx
	app.ctxMu.Unlock()

	for listener.IsActive() {
		select {
		case <-ctx.Done():
			logger.Infof("[TeleApp] 更新循环已取消，退出")
			return
		case update := <-listener.Updates:
			if update.GetType() != "updateNewMessage" {
				continue
			}

			// 仅处理文本消息
			updateNewMessage := update.(*client.UpdateNewMessage)
			message := updateNewMessage.Message
			if message.Content.MessageContentType() != "messageText" {
				continue
			}

			text := message.Content.(*client.MessageText)
			if text.Text == nil || text.Text.Text == "" {
				continue
			}

			// 获取来源Chat信息
			chat, err := app.getChat(message.ChatId)
			if err != nil {
				logger.Warnf("[TeleApp] 获取聊天信息失败, id: %d, %v", message.ChatId, err)
				continue
			}

			logger.Debugf("[TeleApp] 接收消息: %s[%d] -> %s", chat.Title, chat.Id, text.Text.Text)

			switch chat.Type.ChatTypeType() {
			case client.TypeChatTypeSecret:
				continue
			case client.TypeChatTypePrivate:
				app.handlePrivateMessage(ctx, message, text.Text.Text)
				continue
			}

			app.handleGroupMessage(ctx, chat, message, text.Text.Text)
		}
	}
}

// handlePrivateMessage 私聊文本路由到 Key 设置流程
func (app *TeleApp) handlePrivateMessage(ctx context.Context, message *client.Message, text string) {
	if app.handler == nil {
		return
	}

	sender, ok := message.SenderId.(*client.MessageSenderUser)
	if !ok {
		return
	}

	event := handler.PrivateMessageEvent{SenderID: sender.UserId, Text: text}
	go app.handler.HandlePrivateMessage(ctx, event)
}

// handleGroupMessage 群消息：命令走处理器，普通文本入库
func (app *TeleApp) handleGroupMessage(ctx context.Context, chat *client.Chat, message *client.Message, text string) {
	if cmd, args, ok := parseCommand(text); ok {
		if app.handler == nil {
			return
		}
		sender, isUser := message.SenderId.(*client.MessageSenderUser)
		if !isUser {
			return
		}

		event := handler.CommandEvent{
			ChatID:           message.ChatId,
			ChatTitle:        chat.Title,
			MessageID:        message.Id,
			SenderID:         sender.UserId,
			Command:          cmd,
			Args:             args,
			ReplyToMessageID: replyToMessageID(message),
		}
		// 每个命令在独立的 goroutine 中处理，互不阻塞
		go app.handler.HandleCommand(ctx, event)
		return
	}

	info, ok := app.resolveSender(message)
	if !ok {
		return
	}

	msgData := &model.MessageData{
		MessageID:      message.Id,
		ChatID:         message.ChatId,
		SenderID:       info.id,
		SenderName:     info.name,
		SenderUsername: info.username,
		Text:           text,
		SentAt:         time.Unix(int64(message.Date), 0),
		IsBot:          info.isBot,
		IsChannelPost:  info.isChannelPost,
	}

	if _, err := app.svcCtx.MessageModel.Create(ctx, msgData); err != nil {
		logger.Errorf("[TeleApp] 保存消息失败, %v", err)
		return
	}

	logger.Debugf("[TeleApp] 保存消息: %s[%d] -> %s: %s", chat.Title, chat.Id, info.name, text)
}
