package systems

import "errors"

// ErrMissingCollaborator 构造系统时缺少必需的依赖（配置错误，而不是运行时错误）
var ErrMissingCollaborator = errors.New("missing collaborator")
