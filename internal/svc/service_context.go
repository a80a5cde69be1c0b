package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/fachebot/chat-tldr-bot/internal/credential"
	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/llm"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/model"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config             *config.Config
	DbClient           *ent.Client
	TransportProxy     *http.Transport
	MessageModel       *model.MessageModel
	GroupModel         *model.GroupModel
	SettingsModel      *model.SettingsModel
	SummaryRecordModel *model.SummaryRecordModel
	LLMClient          *llm.Client
	Cipher             *credential.Cipher // 未配置主密钥时为 nil
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	var cipher *credential.Cipher
	if c.Credential.MasterKey != "" {
		cipher = credential.NewCipher(c.Credential.MasterKey)
	}

	svcCtx := &ServiceContext{
		Config:             c,
		DbClient:           client,
		TransportProxy:     transportProxy,
		MessageModel:       model.NewMessageModel(client.Message),
		GroupModel:         model.NewGroupModel(client.Group),
		SettingsModel:      model.NewSettingsModel(client.GroupSettings),
		SummaryRecordModel: model.NewSummaryRecordModel(client.SummaryRecord),
		LLMClient:          llm.NewClient(&c.LLM, transportProxy),
		Cipher:             cipher,
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
