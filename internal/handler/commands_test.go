package handler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func adminEvent(cmd string) CommandEvent {
	return CommandEvent{
		ChatID:    testChatID,
		ChatTitle: "测试群",
		SenderID:  testSenderID,
		Command:   cmd,
	}
}

func TestHandleEnable_AdminGate(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(false, nil)
	th.transport.On("SendText", testChatID, msgAdminOnly).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/enable"))

	th.transport.AssertExpectations(t)
	th.groups.AssertNotCalled(t, "SetEnabled")
}

func TestHandleEnable_Success(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.groups.On("SetEnabled", mock.Anything, testChatID, "测试群", true).
		Return(&ent.Group{ChatID: testChatID, Enabled: true}, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "已启用")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/enable"))

	th.groups.AssertExpectations(t)
	th.transport.AssertExpectations(t)
}

func TestHandleDisable_Success(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.groups.On("SetEnabled", mock.Anything, testChatID, "测试群", false).
		Return(&ent.Group{ChatID: testChatID, Enabled: false}, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "已禁用")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/disable"))

	th.groups.AssertExpectations(t)
}

func TestHandleInfo(t *testing.T) {
	th := newTestHandler()
	th.groups.On("GetByChatID", mock.Anything, testChatID).Return(enabledGroup(), nil)
	th.messages.On("CountByChat", mock.Anything, testChatID).Return(1234, nil)
	th.messages.On("GetOldest", mock.Anything, testChatID).
		Return(&ent.Message{ChatID: testChatID, MessageID: 1,
			SentAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)}, nil)
	th.records.On("CountByChat", mock.Anything, testChatID).Return(7, nil)
	th.settings.On("GetByChatID", mock.Anything, testChatID).
		Return(&ent.GroupSettings{ChatID: testChatID, Style: "brief"}, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "已启用") &&
			strings.Contains(text, "1234 条") &&
			strings.Contains(text, "2025-06-01 09:30") &&
			strings.Contains(text, "7 次") &&
			strings.Contains(text, "brief")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/tldr_info"))

	th.transport.AssertExpectations(t)
}

func TestHandleInfo_NoCachedMessages(t *testing.T) {
	th := newTestHandler()
	th.groups.On("GetByChatID", mock.Anything, testChatID).Return(enabledGroup(), nil)
	th.messages.On("CountByChat", mock.Anything, testChatID).Return(0, nil)
	th.records.On("CountByChat", mock.Anything, testChatID).Return(0, nil)
	th.settings.On("GetByChatID", mock.Anything, testChatID).Return(nil, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "0 条") && !strings.Contains(text, "最早缓存消息")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/tldr_info"))

	th.messages.AssertNotCalled(t, "GetOldest")
}

func TestHandleSetStyle_Success(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.settings.On("SetStyle", mock.Anything, testChatID, groupsettings.Style("bullet")).
		Return(&ent.GroupSettings{ChatID: testChatID, Style: "bullet"}, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "bullet")
	})).Return(int64(1), nil)

	event := adminEvent("/tldr_style")
	event.Args = "BULLET"
	th.handler.HandleCommand(context.Background(), event)

	th.settings.AssertExpectations(t)
}

func TestHandleSetStyle_InvalidStyleRejected(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "无效的风格")
	})).Return(int64(1), nil)

	event := adminEvent("/tldr_style")
	event.Args = "fancy"
	th.handler.HandleCommand(context.Background(), event)

	th.settings.AssertNotCalled(t, "SetStyle")
}

func TestHandleSetKey_RegistersIntent(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "私聊")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/tldr_setkey"))

	intent, ok := th.handler.intents.Get(testSenderID)
	assert.True(t, ok, "应记录 Key 设置意向")
	assert.Equal(t, testChatID, intent.ChatID)
}

func TestHandleSetKey_NoCipherConfigured(t *testing.T) {
	th := newTestHandler()
	th.handler.cipher = nil
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "主密钥")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/tldr_setkey"))

	_, ok := th.handler.intents.Get(testSenderID)
	assert.False(t, ok, "未配置主密钥时不应记录意向")
}

func TestHandleDelKey_Success(t *testing.T) {
	th := newTestHandler()
	th.transport.On("IsAdmin", testChatID, testSenderID).Return(true, nil)
	th.groups.On("ClearAPIKeyCipher", mock.Anything, testChatID).Return(nil)
	th.transport.On("SendText", testChatID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "已删除")
	})).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/tldr_delkey"))

	th.groups.AssertExpectations(t)
}

func TestHandlePrivateMessage_StoresEncryptedKey(t *testing.T) {
	th := newTestHandler()
	th.handler.intents.Put(testSenderID, testChatID, "测试群")

	th.groups.On("SetAPIKeyCipher", mock.Anything, testChatID, mock.MatchedBy(func(cipherText string) bool {
		plain, err := th.handler.cipher.Decrypt(cipherText)
		return err == nil && plain == "sk-abcdefghijklmnopqrstuvwxyz"
	})).Return(nil, nil)
	th.transport.On("SendText", testSenderID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "测试群")
	})).Return(int64(1), nil)

	th.handler.HandlePrivateMessage(context.Background(), PrivateMessageEvent{
		SenderID: testSenderID,
		Text:     "sk-abcdefghijklmnopqrstuvwxyz",
	})

	th.groups.AssertExpectations(t)
	_, ok := th.handler.intents.Get(testSenderID)
	assert.False(t, ok, "保存成功后意向应被清除")
}

func TestHandlePrivateMessage_NoIntentIgnored(t *testing.T) {
	th := newTestHandler()

	th.handler.HandlePrivateMessage(context.Background(), PrivateMessageEvent{
		SenderID: testSenderID,
		Text:     "sk-abcdefghijklmnopqrstuvwxyz",
	})

	th.groups.AssertNotCalled(t, "SetAPIKeyCipher")
	th.transport.AssertNotCalled(t, "SendText")
}

func TestHandlePrivateMessage_RejectsMalformedKey(t *testing.T) {
	th := newTestHandler()
	th.handler.intents.Put(testSenderID, testChatID, "测试群")

	th.transport.On("SendText", testSenderID, mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "不像有效的 API Key")
	})).Return(int64(1), nil)

	th.handler.HandlePrivateMessage(context.Background(), PrivateMessageEvent{
		SenderID: testSenderID,
		Text:     "short key",
	})

	th.groups.AssertNotCalled(t, "SetAPIKeyCipher")
	_, ok := th.handler.intents.Get(testSenderID)
	assert.True(t, ok, "拒绝后意向应保留，允许重试")
}

func TestHandleCommand_UnknownCommandIgnored(t *testing.T) {
	th := newTestHandler()

	th.handler.HandleCommand(context.Background(), adminEvent("/unknown"))

	th.transport.AssertNotCalled(t, "SendText")
	th.groups.AssertNotCalled(t, "GetByChatID")
}

func TestHandleHelp(t *testing.T) {
	th := newTestHandler()
	th.transport.On("SendText", testChatID, helpText).Return(int64(1), nil)

	th.handler.HandleCommand(context.Background(), adminEvent("/tldr_help"))

	th.transport.AssertExpectations(t)
}
